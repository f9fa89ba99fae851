package constants

const (
	// TestSui coin
	TestSuiPackageID     = "0x74ed9560ca1c3dac1c9b7db8b080d40cdc87bf4963b1148d77f34efb9d9d54ca"
	TestSuiTreasuryCapID = "0x9f54d1a6949ce0cd8841426ead5ed8a2e018d155608582ff1b04ef2af62dcddc"
	TestSuiIconURL       = "https://strapi-dev.scand.app/uploads/sui_c07df05f00.png"
	TestSuiMetadataID    = "0xe9523d4b8c9ce41e4ab44e3f7d939605ca2df553668f1478253d49d84bd8cad5"

	// PumpSui
	PumpSuiCorePackageID = "0x61849330a6292f53650070183aa5e1599137e4b7f379a919bdf6773f15a3dd36"

	// Cetus AMM
	CetusGlobalConfigID = "0x9774e359588ead122af1c7e7f64e14ade261cfeecdb5d0eb4a5b3b4c8ab8bd3e"
	CetusPoolsID        = "0x50eb61dd5928cec5ea04711a2e9b72e5237e79e9fbcd2ce3d5469dc8708e0ee2"

	// Lending
	LendingCorePackageID = "0xc32eeff14012aa5841bb0b709bf333d6d84d0e44822fe767bce6e9d8b9260646"
	LendingStorageID     = "0x4ff070764d669f315edf7183759b64aa1dd28fd77d3dd7194a1a3c9da4c17121"

	// Sui framework shared clock
	ClockID = "0x0000000000000000000000000000000000000000000000000000000000000006"

	APIBaseURL = "http://localhost:3000/api"
)

// Canonical keys, as front-end bundles name them.
const (
	KeyTestSuiPackageID     = "TESTSUI_PACKAGE_ID"
	KeyTestSuiTreasuryCapID = "TESTSUI_TREASURECAP_ID"
	KeyTestSuiIconURL       = "TESTSUI_ICON_URL"
	KeyTestSuiMetadataID    = "TESTSUI_METADATA_ID"
	KeyPumpSuiCorePackageID = "PUMPSUI_CORE_PACKAGE_ID"
	KeyCetusGlobalConfigID  = "CETUS_GLOBAL_CONFIG_ID"
	KeyCetusPoolsID         = "CETUS_POOLS_ID"
	KeyLendingCorePackageID = "LENDING_CORE_PACKAGE_ID"
	KeyLendingStorageID     = "LENDING_STORAGE_ID"
	KeyClockID              = "CLOCK_ID"
	KeyAPIBaseURL           = "API_BASE_URL"
)

// Group is the documentation category a constant belongs to
type Group string

const (
	GroupToken     Group = "token"
	GroupAMM       Group = "amm"
	GroupLending   Group = "lending"
	GroupFramework Group = "framework"
	GroupAPI       Group = "api"
)

// Kind describes the format a constant's value must have
type Kind string

const (
	KindObjectID Kind = "object_id"
	KindURL      Kind = "url"
)

// Groups lists every group in display order
var Groups = []Group{GroupToken, GroupAMM, GroupLending, GroupFramework, GroupAPI}

var defaultEntries = []Entry{
	{Key: KeyTestSuiPackageID, Value: TestSuiPackageID, Group: GroupToken, Kind: KindObjectID},
	{Key: KeyTestSuiTreasuryCapID, Value: TestSuiTreasuryCapID, Group: GroupToken, Kind: KindObjectID},
	{Key: KeyTestSuiIconURL, Value: TestSuiIconURL, Group: GroupToken, Kind: KindURL},
	{Key: KeyTestSuiMetadataID, Value: TestSuiMetadataID, Group: GroupToken, Kind: KindObjectID},
	{Key: KeyPumpSuiCorePackageID, Value: PumpSuiCorePackageID, Group: GroupToken, Kind: KindObjectID},
	{Key: KeyCetusGlobalConfigID, Value: CetusGlobalConfigID, Group: GroupAMM, Kind: KindObjectID},
	{Key: KeyCetusPoolsID, Value: CetusPoolsID, Group: GroupAMM, Kind: KindObjectID},
	{Key: KeyLendingCorePackageID, Value: LendingCorePackageID, Group: GroupLending, Kind: KindObjectID},
	{Key: KeyLendingStorageID, Value: LendingStorageID, Group: GroupLending, Kind: KindObjectID},
	{Key: KeyClockID, Value: ClockID, Group: GroupFramework, Kind: KindObjectID},
	{Key: KeyAPIBaseURL, Value: APIBaseURL, Group: GroupAPI, Kind: KindURL},
}

// IsGroup reports whether g names a known group
func IsGroup(g string) bool {
	for _, known := range Groups {
		if string(known) == g {
			return true
		}
	}
	return false
}
