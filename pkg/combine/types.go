package combine

// Arguments holds the resolved command-line options for one run.
type Arguments struct {
	Directory string // target directory to list and select from
	Output    string // output file path; empty means stdout
	All       bool   // process every tracked item without prompting (-p/--path)
}

// Fixed user-facing messages. These are part of the CLI contract and go to
// stdout/stderr directly, never through the structured logger.
const (
	msgNotGitRepo     = "Error: Not a git repository!"
	msgDirNotExist    = "Error: Directory %s does not exist!"
	msgNoTrackedFiles = "No Git-tracked files found in the directory."
	msgItemsHeader    = "Git-tracked items in directory:"
	msgInputPrompt    = "Enter item numbers separated by commas, or press Ctrl+C to exit:"
	msgEmptyInput     = "Please enter some numbers or press Ctrl+C to exit."
	msgInvalidNumber  = "Invalid number: %s"
	msgCancelled      = "Operation cancelled."
	msgFileReadError  = "Error reading file: %s"
)
