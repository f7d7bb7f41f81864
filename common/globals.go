package common

const (
	AssetTypeCash       = "cash"
	AssetTypeInvestment = "investment"
	AssetTypeRealEstate = "real_estate"
	AssetTypeVehicle    = "vehicle"
	AssetTypeOther      = "other"

	LiabilityTypeMortgage   = "mortgage"
	LiabilityTypeLoan       = "loan"
	LiabilityTypeCreditCard = "credit_card"
	LiabilityTypeOther      = "other"

	CadenceWeekly    = "weekly"
	CadenceMonthly   = "monthly"
	CadenceQuarterly = "quarterly"
	CadenceYearly    = "yearly"

	SnapshotRoutingKey = "networth.snapshot.reconciled"
)
