package errcode

import "strings"

// Attr is the 8-bit attribute code: an index into the fixed vocabulary of
// adjectives and participles describing the error. Code 0 renders as nothing.
type Attr uint8

const (
	AttrNone Attr = 0

	AttrA          Attr = 1
	AttrAck        Attr = 2
	AttrActive     Attr = 3
	AttrAligned    Attr = 4
	AttrAllowed    Attr = 5
	AttrAssigned   Attr = 6
	AttrAttached   Attr = 7
	AttrAttempted  Attr = 8
	AttrAuthorized Attr = 9
	AttrAvailable  Attr = 10

	AttrBad     Attr = 11
	AttrBlocked Attr = 12
	AttrBroken  Attr = 13
	AttrBuilt   Attr = 14
	AttrBusy    Attr = 15

	AttrClosed      Attr = 16
	AttrCollided    Attr = 17
	AttrCompiled    Attr = 18
	AttrComplete    Attr = 19
	AttrConflicted  Attr = 20
	AttrConnected   Attr = 21
	AttrConstructed Attr = 22
	AttrCreated     Attr = 23

	AttrDefined    Attr = 24
	AttrDenied     Attr = 25
	AttrDeparted   Attr = 26
	AttrDestructed Attr = 27
	AttrDetached   Attr = 28
	AttrDetected   Attr = 29
	AttrDisabled   Attr = 30
	AttrDown       Attr = 31
	AttrDownloaded Attr = 32

	AttrEmpty      Attr = 33
	AttrEnabled    Attr = 34
	AttrEnhanced   Attr = 35
	AttrEnough     Attr = 36
	AttrExceeded   Attr = 37
	AttrExchanged  Attr = 38
	AttrExecutable Attr = 39
	AttrExists     Attr = 40
	AttrExpired    Attr = 41
	AttrExtended   Attr = 42

	AttrFailed    Attr = 43
	AttrFalse     Attr = 44
	AttrFatal     Attr = 45
	AttrForbidden Attr = 46
	AttrFormatted Attr = 47
	AttrFound     Attr = 48
	AttrFull      Attr = 49

	AttrGone Attr = 50
	AttrGood Attr = 51

	AttrHalted Attr = 52
	AttrHidden Attr = 53
	AttrHold   Attr = 54

	AttrIdle        Attr = 55
	AttrIllegal     Attr = 56
	AttrImplemented Attr = 57
	AttrInProgress  Attr = 58
	AttrInUse       Attr = 59
	AttrInitialized Attr = 60
	AttrInserted    Attr = 61
	AttrInstalled   Attr = 62
	AttrInterrupted Attr = 63

	AttrJoined Attr = 64
	AttrKnown  Attr = 65

	AttrLinked Attr = 66
	AttrLoaded Attr = 67
	AttrLocal  Attr = 68
	AttrLocked Attr = 69
	AttrLooped Attr = 70
	AttrLost   Attr = 71

	AttrMerged  Attr = 72
	AttrMissing Attr = 73
	AttrMounted Attr = 74

	AttrNeeded Attr = 75
	AttrNo     Attr = 76
	AttrNoSuch Attr = 77

	AttrOff        Attr = 78
	AttrOn         Attr = 79
	AttrOnline     Attr = 80
	AttrOpen       Attr = 81
	AttrOrdered    Attr = 82
	AttrOutOf      Attr = 83
	AttrOutOfRange Attr = 84
	AttrOverflow   Attr = 85

	AttrPadded      Attr = 86
	AttrParted      Attr = 87
	AttrPermitted   Attr = 88
	AttrPopped      Attr = 89
	AttrPreloaded   Attr = 90
	AttrProcessable Attr = 91
	AttrProvided    Attr = 92
	AttrPushed      Attr = 93

	AttrReachable  Attr = 94
	AttrReadable   Attr = 95
	AttrReceived   Attr = 96
	AttrRefused    Attr = 97
	AttrRegistered Attr = 98
	AttrRejected   Attr = 99
	AttrReleased   Attr = 100
	AttrRemote     Attr = 101
	AttrRemoved    Attr = 102
	AttrRenderable Attr = 103
	AttrReserved   Attr = 104
	AttrReset      Attr = 105
	AttrResponding Attr = 106
	AttrRetried    Attr = 107
	AttrRight      Attr = 108
	AttrRunning    Attr = 109

	AttrSent         Attr = 110
	AttrShared       Attr = 111
	AttrSorted       Attr = 112
	AttrSpecified    Attr = 113
	AttrSplitted     Attr = 114
	AttrStalled      Attr = 115
	AttrStopped      Attr = 116
	AttrSuceeded     Attr = 117
	AttrSuitable     Attr = 118
	AttrSupported    Attr = 119
	AttrSynchronized Attr = 120

	AttrTerminated Attr = 121
	AttrThrown     Attr = 122
	AttrTimedOut   Attr = 123
	AttrTooComplex Attr = 124
	AttrTooFew     Attr = 125
	AttrTooLarge   Attr = 126
	AttrTooLong    Attr = 127
	AttrTooMany    Attr = 128
	AttrTooMuch    Attr = 129
	AttrTooSimple  Attr = 130
	AttrTooSmall   Attr = 131
	AttrTriggered  Attr = 132
	AttrTrue       Attr = 133

	AttrUnblocked     Attr = 134
	AttrUnderflow     Attr = 135
	AttrUninitialized Attr = 136
	AttrUninstalled   Attr = 137
	AttrUnique        Attr = 138
	AttrUnloaded      Attr = 139
	AttrUnlocked      Attr = 140
	AttrUnsorted      Attr = 141
	AttrUp            Attr = 142
	AttrUpdated       Attr = 143
	AttrUpgraded      Attr = 144
	AttrUploaded      Attr = 145
	AttrUsed          Attr = 146

	AttrValid    Attr = 147
	AttrVisible  Attr = 148
	AttrWorking  Attr = 149
	AttrWritable Attr = 150
	AttrWrong    Attr = 151
)

// String returns the uppercase vocabulary word for the attribute, with
// underscores rendered as spaces ("OUT OF RANGE"). Unknown codes return "".
func (a Attr) String() string {
	return attrWords[a]
}

var attrByWord = func() map[string]Attr {
	m := make(map[string]Attr, 151)
	for code, word := range attrWords {
		if word != "" {
			m[word] = Attr(code)
		}
	}
	return m
}()

// Alias spellings accepted by ParseDesc on top of the vocabulary itself.
var descAliases = map[string]Desc{
	"INVALID":     Invalid,
	"UNDEFINED":   Undefined,
	"UNUSED":      Unused,
	"UNORDERED":   Unordered,
	"INACTIVE":    Inactive,
	"ERASED":      Erased,
	"DELETED":     Deleted,
	"OFFLINE":     Offline,
	"UNAVAILABLE": Unavailable,
}

// ParseDesc resolves an attribute spelling into a message descriptor.
// Matching is case-insensitive and treats underscores as spaces, so
// "not_found", "NOT FOUND" and "FOUND" (with a leading NOT) all resolve.
// Aliases like INVALID or OFFLINE resolve to their negated forms.
func ParseDesc(name string) (Desc, bool) {
	word := strings.ToUpper(strings.TrimSpace(name))
	word = strings.ReplaceAll(word, "_", " ")
	if d, ok := descAliases[word]; ok {
		return d, true
	}
	if a, ok := attrByWord[word]; ok {
		return a.Desc(), true
	}
	if rest, ok := strings.CutPrefix(word, "NOT "); ok {
		if a, ok := attrByWord[rest]; ok {
			return a.Not(), true
		}
	}
	return 0, false
}
