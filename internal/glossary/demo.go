package glossary

// demoNouns is the built-in demo glossary, indexed by noun code. Code 0 is
// the blank noun. Combined with the attribute vocabulary it yields a few
// tens of thousands of distinct messages out of the box.
var demoNouns = []string{
	"",

	"ACCESS",
	"ACCOUNT",
	"ADDRESS",
	"ADMINISTRATOR",
	"API",
	"APPLICATION",
	"ARCHIVE",
	"ARGUMENT",
	"ASSET",
	"AUDIO",
	"AUTHENTICATION",
	"BINARY",
	"BIRTHDATE",
	"BLOB",
	"BOX",
	"BROADCAST",
	"CAPSULE",
	"CHECKBOX",
	"CINEMATIC",
	"CIRCLE",
	"CLASS",
	"CLIENT",
	"CLOUD",
	"CODE",
	"COMBO",
	"COMMIT",
	"COMPILATION",
	"COMPILER",
	"COMPRESSION",
	"CONTROLLER",
	"COUNTRY",
	"CVS",
	"CYPHERING",
	"DAEMON",
	"DATA",
	"DEPENDENCY",
	"DESCRIPTOR",
	"DEVICE",
	"DIAGRAM",
	"DIRECTORY",
	"DISK",
	"DLL",
	"DOMAIN",
	"DOWNLOAD",
	"DRIVER",
	"EDITOR",
	"ENDPOINT",
	"ENGINE",
	"EVALUATION",
	"EVALUATOR",
	"EVENT",
	"EXCEPTION",
	"EXCHANGE",
	"EXPECTATION",
	"FETCH",
	"FILE",
	"FLOAT",
	"FLOW",
	"FOLDER",
	"FONT",
	"FORMAT",
	"FUNCTION",
	"GAME",
	"GAMEPAD",
	"GATEWAY",
	"GEOMETRY",
	"GIZMO",
	"GRAPH",
	"GRAPHICS",
	"GROUP",
	"HANDLE",
	"HARDWARE",
	"HEADER",
	"HID",
	"HMD",
	"HOST",
	"IDENTIFIER",
	"INDEX",
	"INPUT",
	"INTEGER",
	"INTERFACE",
	"INTERVAL",
	"IO",
	"JOYSTICK",
	"KEYBOARD",
	"LENGTH",
	"LEVEL",
	"LIBRARY",
	"LIMIT",
	"LINK",
	"LINKAGE",
	"LINKER",
	"LOCATION",
	"LOGIN",
	"LOOP",
	"MACHINE",
	"MEDIA",
	"MEMORY",
	"MESH",
	"MESSAGE",
	"METHOD",
	"MODEL",
	"MODULE",
	"MONITOR",
	"MOUSE",
	"NETWORK",
	"NICKNAME",
	"NODE",
	"NOTHING",
	"NUMBER",
	"OBJECT",
	"OPERATION",
	"OPERATOR",
	"ORIENTATION",
	"PACKAGE",
	"PASSWORD",
	"PATH",
	"PATHFILE",
	"PAYMENT",
	"PAYWALL",
	"PEER",
	"PERMISSION",
	"PHYSICS",
	"PLATFORM",
	"POSITION",
	"POSTCONDITION",
	"PRECONDITION",
	"PROFILER",
	"PROTOCOL",
	"PROXY",
	"QUERY",
	"RANGE",
	"RATIO",
	"RECORD",
	"RENDERER",
	"REPOSITORY",
	"REQUEST",
	"RESOURCE",
	"REVISION",
	"ROTATION",
	"ROUTE",
	"RUNTIME",
	"SCALE",
	"SCREEN",
	"SCRIPT",
	"SEARCH",
	"SEQUENCE",
	"SERIALIZATION",
	"SERVER",
	"SERVICE",
	"SHADER",
	"SHAPE",
	"SIZE",
	"SLIDER",
	"SOFTWARE",
	"SOURCE",
	"SPACE",
	"SPHERE",
	"SQUARE",
	"STACK",
	"STACKTRACE",
	"STAGE",
	"STARTPOINT",
	"STREAM",
	"STREAMING",
	"STRING",
	"STRUCT",
	"SUBSYSTEM",
	"SYMBOL",
	"SYSTEM",
	"TEXT",
	"TIME",
	"TOUCH",
	"TRANSFORM",
	"TRANSLATION",
	"TRANSPORT",
	"TRIGGER",
	"TRUETYPE",
	"TYPE",
	"UPGRADE",
	"UPLOAD",
	"USER",
	"USERNAME",
	"VALUE",
	"VARIANT",
	"VERSION",
	"VISUALIZER",
	"WEBPAGE",
	"WEBSITE",
	"WEBVIEW",
	"WIDGET",
	"WINDOW",
	"ZIPCODE",
}

// Demo returns the built-in demo glossary as a Map.
func Demo() Map {
	m := make(Map, len(demoNouns))
	for code, word := range demoNouns {
		if word != "" {
			m[code] = word
		}
	}
	return m
}

// DemoCode looks up a word in the demo glossary and returns its noun code.
func DemoCode(word string) (int, bool) {
	for code, w := range demoNouns {
		if w == word {
			return code, true
		}
	}
	return 0, false
}
