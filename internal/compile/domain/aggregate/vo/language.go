package vo

// Language is a source language identifier as sent by the client. Values
// outside the supported set are kept verbatim so they can be reported back.
type Language string

const (
	JavaScript Language = "javascript"
	Python     Language = "python"
	Java       Language = "java"
	Cpp        Language = "cpp"
	C          Language = "c"
	Go         Language = "go"
)

// Languages lists the supported languages in display order.
var Languages = []Language{JavaScript, Python, Java, Cpp, C, Go}

func (l Language) String() string {
	return string(l)
}

// IsSupported matches exactly: no aliases, no case folding.
func (l Language) IsSupported() bool {
	switch l {
	case JavaScript, Python, Java, Cpp, C, Go:
		return true
	default:
		return false
	}
}

func (l Language) DisplayName() string {
	switch l {
	case JavaScript:
		return "JavaScript"
	case Python:
		return "Python"
	case Java:
		return "Java"
	case Cpp:
		return "C++"
	case C:
		return "C"
	case Go:
		return "Go"
	default:
		return string(l)
	}
}

func (l Language) FileSuffix() string {
	switch l {
	case JavaScript:
		return ".js"
	case Python:
		return ".py"
	case Java:
		return ".java"
	case Cpp:
		return ".cpp"
	case C:
		return ".c"
	case Go:
		return ".go"
	default:
		return ""
	}
}

// Template is the starter program shown in the editor.
func (l Language) Template() string {
	switch l {
	case JavaScript:
		return "// JavaScript\nconsole.log(\"Hello, World!\");\n"
	case Python:
		return "# Python\nprint(\"Hello, World!\")\n"
	case Java:
		return "public class Main {\n    public static void main(String[] args) {\n        System.out.println(\"Hello, World!\");\n    }\n}\n"
	case Cpp:
		return "#include <iostream>\nusing namespace std;\n\nint main() {\n    cout << \"Hello, World!\" << endl;\n    return 0;\n}\n"
	case C:
		return "#include <stdio.h>\n\nint main() {\n    printf(\"Hello, World!\\n\");\n    return 0;\n}\n"
	case Go:
		return "package main\n\nimport \"fmt\"\n\nfunc main() {\n    fmt.Println(\"Hello, World!\")\n}\n"
	default:
		return ""
	}
}
