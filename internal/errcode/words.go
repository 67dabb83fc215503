package errcode

// attrWords maps attribute codes to their vocabulary words. Pure data,
// carried over verbatim from the original vocabulary (including SUCEEDED
// and SPLITTED, which are part of the wire-stable word set).
var attrWords = [maskAttr + 1]string{
	AttrA:          "A",
	AttrAck:        "ACK",
	AttrActive:     "ACTIVE",
	AttrAligned:    "ALIGNED",
	AttrAllowed:    "ALLOWED",
	AttrAssigned:   "ASSIGNED",
	AttrAttached:   "ATTACHED",
	AttrAttempted:  "ATTEMPTED",
	AttrAuthorized: "AUTHORIZED",
	AttrAvailable:  "AVAILABLE",

	AttrBad:     "BAD",
	AttrBlocked: "BLOCKED",
	AttrBroken:  "BROKEN",
	AttrBuilt:   "BUILT",
	AttrBusy:    "BUSY",

	AttrClosed:      "CLOSED",
	AttrCollided:    "COLLIDED",
	AttrCompiled:    "COMPILED",
	AttrComplete:    "COMPLETE",
	AttrConflicted:  "CONFLICTED",
	AttrConnected:   "CONNECTED",
	AttrConstructed: "CONSTRUCTED",
	AttrCreated:     "CREATED",

	AttrDefined:    "DEFINED",
	AttrDenied:     "DENIED",
	AttrDeparted:   "DEPARTED",
	AttrDestructed: "DESTRUCTED",
	AttrDetached:   "DETACHED",
	AttrDetected:   "DETECTED",
	AttrDisabled:   "DISABLED",
	AttrDown:       "DOWN",
	AttrDownloaded: "DOWNLOADED",

	AttrEmpty:      "EMPTY",
	AttrEnabled:    "ENABLED",
	AttrEnhanced:   "ENHANCED",
	AttrEnough:     "ENOUGH",
	AttrExceeded:   "EXCEEDED",
	AttrExchanged:  "EXCHANGED",
	AttrExecutable: "EXECUTABLE",
	AttrExists:     "EXISTS",
	AttrExpired:    "EXPIRED",
	AttrExtended:   "EXTENDED",

	AttrFailed:    "FAILED",
	AttrFalse:     "FALSE",
	AttrFatal:     "FATAL",
	AttrForbidden: "FORBIDDEN",
	AttrFormatted: "FORMATTED",
	AttrFound:     "FOUND",
	AttrFull:      "FULL",

	AttrGone: "GONE",
	AttrGood: "GOOD",

	AttrHalted: "HALTED",
	AttrHidden: "HIDDEN",
	AttrHold:   "HOLD",

	AttrIdle:        "IDLE",
	AttrIllegal:     "ILLEGAL",
	AttrImplemented: "IMPLEMENTED",
	AttrInProgress:  "IN PROGRESS",
	AttrInUse:       "IN USE",
	AttrInitialized: "INITIALIZED",
	AttrInserted:    "INSERTED",
	AttrInstalled:   "INSTALLED",
	AttrInterrupted: "INTERRUPTED",

	AttrJoined: "JOINED",
	AttrKnown:  "KNOWN",

	AttrLinked: "LINKED",
	AttrLoaded: "LOADED",
	AttrLocal:  "LOCAL",
	AttrLocked: "LOCKED",
	AttrLooped: "LOOPED",
	AttrLost:   "LOST",

	AttrMerged:  "MERGED",
	AttrMissing: "MISSING",
	AttrMounted: "MOUNTED",

	AttrNeeded: "NEEDED",
	AttrNo:     "NO",
	AttrNoSuch: "NO SUCH",

	AttrOff:        "OFF",
	AttrOn:         "ON",
	AttrOnline:     "ONLINE",
	AttrOpen:       "OPEN",
	AttrOrdered:    "ORDERED",
	AttrOutOf:      "OUT OF",
	AttrOutOfRange: "OUT OF RANGE",
	AttrOverflow:   "OVERFLOW",

	AttrPadded:      "PADDED",
	AttrParted:      "PARTED",
	AttrPermitted:   "PERMITTED",
	AttrPopped:      "POPPED",
	AttrPreloaded:   "PRELOADED",
	AttrProcessable: "PROCESSABLE",
	AttrProvided:    "PROVIDED",
	AttrPushed:      "PUSHED",

	AttrReachable:  "REACHABLE",
	AttrReadable:   "READABLE",
	AttrReceived:   "RECEIVED",
	AttrRefused:    "REFUSED",
	AttrRegistered: "REGISTERED",
	AttrRejected:   "REJECTED",
	AttrReleased:   "RELEASED",
	AttrRemote:     "REMOTE",
	AttrRemoved:    "REMOVED",
	AttrRenderable: "RENDERABLE",
	AttrReserved:   "RESERVED",
	AttrReset:      "RESET",
	AttrResponding: "RESPONDING",
	AttrRetried:    "RETRIED",
	AttrRight:      "RIGHT",
	AttrRunning:    "RUNNING",

	AttrSent:         "SENT",
	AttrShared:       "SHARED",
	AttrSorted:       "SORTED",
	AttrSpecified:    "SPECIFIED",
	AttrSplitted:     "SPLITTED",
	AttrStalled:      "STALLED",
	AttrStopped:      "STOPPED",
	AttrSuceeded:     "SUCEEDED",
	AttrSuitable:     "SUITABLE",
	AttrSupported:    "SUPPORTED",
	AttrSynchronized: "SYNCHRONIZED",

	AttrTerminated: "TERMINATED",
	AttrThrown:     "THROWN",
	AttrTimedOut:   "TIMED OUT",
	AttrTooComplex: "TOO COMPLEX",
	AttrTooFew:     "TOO FEW",
	AttrTooLarge:   "TOO LARGE",
	AttrTooLong:    "TOO LONG",
	AttrTooMany:    "TOO MANY",
	AttrTooMuch:    "TOO MUCH",
	AttrTooSimple:  "TOO SIMPLE",
	AttrTooSmall:   "TOO SMALL",
	AttrTriggered:  "TRIGGERED",
	AttrTrue:       "TRUE",

	AttrUnblocked:     "UNBLOCKED",
	AttrUnderflow:     "UNDERFLOW",
	AttrUninitialized: "UNINITIALIZED",
	AttrUninstalled:   "UNINSTALLED",
	AttrUnique:        "UNIQUE",
	AttrUnloaded:      "UNLOADED",
	AttrUnlocked:      "UNLOCKED",
	AttrUnsorted:      "UNSORTED",
	AttrUp:            "UP",
	AttrUpdated:       "UPDATED",
	AttrUpgraded:      "UPGRADED",
	AttrUploaded:      "UPLOADED",
	AttrUsed:          "USED",

	AttrValid:    "VALID",
	AttrVisible:  "VISIBLE",
	AttrWorking:  "WORKING",
	AttrWritable: "WRITABLE",
	AttrWrong:    "WRONG",
}
