package rwf

import (
	"strconv"
	"strings"
)

// StreamState is the state of an item stream.
type StreamState uint8

// List of stream states.
const (
	StreamUnspecified StreamState = iota
	StreamOpen
	StreamNonStreaming
	StreamClosedRecover
	StreamClosed
	StreamRedirected

	maxStreamState StreamState = 31
)

var streamStateNames = [...]string{"Unspecified", "Open", "NonStreaming", "ClosedRecover", "Closed", "Redirected"}

func (s StreamState) String() string {
	if int(s) < len(streamStateNames) {
		return streamStateNames[s]
	}
	return strconv.Itoa(int(s))
}

// ParseStreamState returns the stream state named s. A decimal number is
// accepted for states without a name.
func ParseStreamState(s string) (StreamState, error) {
	n, err := lookupName(streamStateNames[:], s, int(maxStreamState))
	if err != nil {
		return 0, invalidArgf("unknown stream state %q", s)
	}
	return StreamState(n), nil
}

// DataState tells whether the data of a stream can be trusted.
type DataState uint8

// List of data states.
const (
	DataNoChange DataState = iota
	DataOk
	DataSuspect

	maxDataState DataState = 7
)

var dataStateNames = [...]string{"NoChange", "Ok", "Suspect"}

func (d DataState) String() string {
	if int(d) < len(dataStateNames) {
		return dataStateNames[d]
	}
	return strconv.Itoa(int(d))
}

// ParseDataState returns the data state named s. A decimal number is
// accepted for states without a name.
func ParseDataState(s string) (DataState, error) {
	n, err := lookupName(dataStateNames[:], s, int(maxDataState))
	if err != nil {
		return 0, invalidArgf("unknown data state %q", s)
	}
	return DataState(n), nil
}

// StateCode gives more detail about a state.
type StateCode uint8

// List of state codes.
const (
	CodeNone                      StateCode = 0
	CodeNotFound                  StateCode = 1
	CodeTimeout                   StateCode = 2
	CodeNotEntitled               StateCode = 3
	CodeStateInvalidArgument      StateCode = 4
	CodeUsageError                StateCode = 5
	CodePreempted                 StateCode = 6
	CodeJitConflationStarted      StateCode = 7
	CodeRealtimeResumed           StateCode = 8
	CodeFailoverStarted           StateCode = 9
	CodeFailoverCompleted         StateCode = 10
	CodeGapDetected               StateCode = 11
	CodeNoResources               StateCode = 12
	CodeTooManyItems              StateCode = 13
	CodeAlreadyOpen               StateCode = 14
	CodeSourceUnknown             StateCode = 15
	CodeNotOpen                   StateCode = 16
	CodeNonUpdatingItem           StateCode = 19
	CodeUnsupportedViewType       StateCode = 20
	CodeInvalidView               StateCode = 21
	CodeFullViewProvided          StateCode = 22
	CodeUnableToRequestAsBatch    StateCode = 23
	CodeNoBatchViewSupportInReq   StateCode = 26
	CodeExceededMaxMountsPerUser  StateCode = 27
	CodeError                     StateCode = 28
	CodeDacsDown                  StateCode = 29
	CodeUserUnknownToPermSys      StateCode = 30
	CodeDacsMaxLoginsReached      StateCode = 31
	CodeDacsUserAccessToAppDenied StateCode = 32
	CodeGapFill                   StateCode = 34
	CodeAppAuthorizationFailed    StateCode = 35

	// MaxStateCode is the largest code a State can carry.
	MaxStateCode StateCode = 127
)

var stateCodeNames = map[StateCode]string{
	CodeNone:                      "None",
	CodeNotFound:                  "NotFound",
	CodeTimeout:                   "Timeout",
	CodeNotEntitled:               "NotEntitled",
	CodeStateInvalidArgument:      "InvalidArgument",
	CodeUsageError:                "UsageError",
	CodePreempted:                 "Preempted",
	CodeJitConflationStarted:      "JitConflationStarted",
	CodeRealtimeResumed:           "RealtimeResumed",
	CodeFailoverStarted:           "FailoverStarted",
	CodeFailoverCompleted:         "FailoverCompleted",
	CodeGapDetected:               "GapDetected",
	CodeNoResources:               "NoResources",
	CodeTooManyItems:              "TooManyItems",
	CodeAlreadyOpen:               "AlreadyOpen",
	CodeSourceUnknown:             "SourceUnknown",
	CodeNotOpen:                   "NotOpen",
	CodeNonUpdatingItem:           "NonUpdatingItem",
	CodeUnsupportedViewType:       "UnsupportedViewType",
	CodeInvalidView:               "InvalidView",
	CodeFullViewProvided:          "FullViewProvided",
	CodeUnableToRequestAsBatch:    "UnableToRequestAsBatch",
	CodeNoBatchViewSupportInReq:   "NoBatchViewSupportInReq",
	CodeExceededMaxMountsPerUser:  "ExceededMaxMountsPerUser",
	CodeError:                     "Error",
	CodeDacsDown:                  "DacsDown",
	CodeUserUnknownToPermSys:      "UserUnknownToPermSys",
	CodeDacsMaxLoginsReached:      "MaxLoginsReached",
	CodeDacsUserAccessToAppDenied: "UserAccessToAppDenied",
	CodeGapFill:                   "GapFill",
	CodeAppAuthorizationFailed:    "AppAuthorizationFailed",
}

func (c StateCode) String() string {
	if name, ok := stateCodeNames[c]; ok {
		return name
	}
	return strconv.Itoa(int(c))
}

// ParseStateCode returns the state code named s. A decimal number is
// accepted for codes without a name.
func ParseStateCode(s string) (StateCode, error) {
	for c, name := range stateCodeNames {
		if strings.EqualFold(s, name) {
			return c, nil
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > int(MaxStateCode) {
		return 0, invalidArgf("unknown state code %q", s)
	}
	return StateCode(n), nil
}

// lookupName returns the index of s in names, or s as a decimal number
// up to max.
func lookupName(names []string, s string, max int) (int, error) {
	for i, name := range names {
		if strings.EqualFold(s, name) {
			return i, nil
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > max {
		return 0, ErrInvalidArgument
	}
	return n, nil
}
