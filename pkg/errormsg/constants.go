// pkg/errormsg/constants.go
package errormsg

// ErrorCode identifies a binding-level failure.
type ErrorCode int

const (
	Success ErrorCode = iota
	CouldNotFindJlinkDLL
	CouldNotFindJprogDLL
	CouldNotLoadDLL
	CouldNotOpenDLL
	CouldNotOpenDevice
	CouldNotResetDevice
	CouldNotCloseDevice
	CouldNotConnectToDevice
	CouldNotCallFunction
	CouldNotErase
	CouldNotProgram
	CouldNotRead
	CouldNotOpenHexFile
	WrongMagicNumber
)

// LowLevelError is the nrfjprogdll_err_t value returned by the vendor library.
type LowLevelError int32

const (
	SUCCESS                                   LowLevelError = 0
	OUT_OF_MEMORY                             LowLevelError = -1
	INVALID_OPERATION                         LowLevelError = -2
	INVALID_PARAMETER                         LowLevelError = -3
	INVALID_DEVICE_FOR_OPERATION              LowLevelError = -4
	WRONG_FAMILY_FOR_DEVICE                   LowLevelError = -5
	EMULATOR_NOT_CONNECTED                    LowLevelError = -10
	CANNOT_CONNECT                            LowLevelError = -11
	LOW_VOLTAGE                               LowLevelError = -12
	NO_EMULATOR_CONNECTED                     LowLevelError = -13
	FAMILY_UNKNOWN                            LowLevelError = -14
	NVMC_ERROR                                LowLevelError = -20
	RECOVER_FAILED                            LowLevelError = -21
	RAM_IS_OFF_ERROR                          LowLevelError = -22
	QspiIniNotFoundError                      LowLevelError = -30
	QspiIniCannotBeOpenedError                LowLevelError = -31
	QspiSyntaxError                           LowLevelError = -32
	QspiIniParsingError                       LowLevelError = -33
	NOT_AVAILABLE_BECAUSE_PROTECTION          LowLevelError = -90
	NOT_AVAILABLE_BECAUSE_MPU_CONFIG          LowLevelError = -91
	JLINKARM_DLL_NOT_FOUND                    LowLevelError = -100
	JLINKARM_DLL_COULD_NOT_BE_OPENED          LowLevelError = -101
	JLINKARM_DLL_ERROR                        LowLevelError = -102
	JLINKARM_DLL_TOO_OLD                      LowLevelError = -103
	NRFJPROG_SUB_DLL_NOT_FOUND                LowLevelError = -150
	NRFJPROG_SUB_DLL_COULD_NOT_BE_OPENED      LowLevelError = -151
	NRFJPROG_SUB_DLL_COULD_NOT_LOAD_FUNCTIONS LowLevelError = -152
	NOT_IMPLEMENTED_ERROR                     LowLevelError = -255
)

// UnknownName is returned for any code missing from the lookup tables.
const UnknownName = "Unknown"
