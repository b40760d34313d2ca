// pkg/errormsg/names.go
package errormsg

import "sort"

var errorCodeNames = map[ErrorCode]string{
	Success:                 "Success",
	CouldNotFindJlinkDLL:    "CouldNotFindJlinkDLL",
	CouldNotFindJprogDLL:    "CouldNotFindJprogDLL",
	CouldNotLoadDLL:         "CouldNotLoadDLL",
	CouldNotOpenDLL:         "CouldNotOpenDLL",
	CouldNotOpenDevice:      "CouldNotOpenDevice",
	CouldNotResetDevice:     "CouldNotResetDevice",
	CouldNotCloseDevice:     "CouldNotCloseDevice",
	CouldNotConnectToDevice: "CouldNotConnectToDevice",
	CouldNotCallFunction:    "CouldNotCallFunction",
	CouldNotErase:           "CouldNotErase",
	CouldNotProgram:         "CouldNotProgram",
	CouldNotRead:            "CouldNotRead",
	CouldNotOpenHexFile:     "CouldNotOpenHexFile",
	WrongMagicNumber:        "WrongMagicNumber",
}

var lowLevelNames = map[LowLevelError]string{
	SUCCESS:                                   "SUCCESS",
	OUT_OF_MEMORY:                             "OUT_OF_MEMORY",
	INVALID_OPERATION:                         "INVALID_OPERATION",
	INVALID_PARAMETER:                         "INVALID_PARAMETER",
	INVALID_DEVICE_FOR_OPERATION:              "INVALID_DEVICE_FOR_OPERATION",
	WRONG_FAMILY_FOR_DEVICE:                   "WRONG_FAMILY_FOR_DEVICE",
	EMULATOR_NOT_CONNECTED:                    "EMULATOR_NOT_CONNECTED",
	CANNOT_CONNECT:                            "CANNOT_CONNECT",
	LOW_VOLTAGE:                               "LOW_VOLTAGE",
	NO_EMULATOR_CONNECTED:                     "NO_EMULATOR_CONNECTED",
	FAMILY_UNKNOWN:                            "FAMILY_UNKNOWN",
	NVMC_ERROR:                                "NVMC_ERROR",
	RECOVER_FAILED:                            "RECOVER_FAILED",
	RAM_IS_OFF_ERROR:                          "RAM_IS_OFF_ERROR",
	QspiIniNotFoundError:                      "QspiIniNotFoundError",
	QspiIniCannotBeOpenedError:                "QspiIniCannotBeOpenedError",
	QspiSyntaxError:                           "QspiSyntaxError",
	QspiIniParsingError:                       "QspiIniParsingError",
	NOT_AVAILABLE_BECAUSE_PROTECTION:          "NOT_AVAILABLE_BECAUSE_PROTECTION",
	NOT_AVAILABLE_BECAUSE_MPU_CONFIG:          "NOT_AVAILABLE_BECAUSE_MPU_CONFIG",
	JLINKARM_DLL_NOT_FOUND:                    "JLINKARM_DLL_NOT_FOUND",
	JLINKARM_DLL_COULD_NOT_BE_OPENED:          "JLINKARM_DLL_COULD_NOT_BE_OPENED",
	JLINKARM_DLL_ERROR:                        "JLINKARM_DLL_ERROR",
	JLINKARM_DLL_TOO_OLD:                      "JLINKARM_DLL_TOO_OLD",
	NRFJPROG_SUB_DLL_NOT_FOUND:                "NRFJPROG_SUB_DLL_NOT_FOUND",
	NRFJPROG_SUB_DLL_COULD_NOT_BE_OPENED:      "NRFJPROG_SUB_DLL_COULD_NOT_BE_OPENED",
	NRFJPROG_SUB_DLL_COULD_NOT_LOAD_FUNCTIONS: "NRFJPROG_SUB_DLL_COULD_NOT_LOAD_FUNCTIONS",
	NOT_IMPLEMENTED_ERROR:                     "NOT_IMPLEMENTED_ERROR",
}

// String returns the symbolic name, or UnknownName.
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return UnknownName
}

// String returns the symbolic name, or UnknownName.
func (c LowLevelError) String() string {
	if name, ok := lowLevelNames[c]; ok {
		return name
	}
	return UnknownName
}

// ParseErrorCode resolves a symbolic binding-level name.
func ParseErrorCode(name string) (ErrorCode, bool) {
	for code, n := range errorCodeNames {
		if n == name {
			return code, true
		}
	}
	return 0, false
}

// ParseLowLevelError resolves a symbolic vendor name.
func ParseLowLevelError(name string) (LowLevelError, bool) {
	for code, n := range lowLevelNames {
		if n == name {
			return code, true
		}
	}
	return 0, false
}

// Codes returns every binding-level code in ascending order.
func Codes() []ErrorCode {
	codes := make([]ErrorCode, 0, len(errorCodeNames))
	for code := range errorCodeNames {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// LowLevelErrors returns every vendor code, SUCCESS first, then descending.
func LowLevelErrors() []LowLevelError {
	codes := make([]LowLevelError, 0, len(lowLevelNames))
	for code := range lowLevelNames {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] > codes[j] })
	return codes
}
