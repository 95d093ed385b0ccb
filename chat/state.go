package chat

// Mode selects which renderer and system-message source drive prompt
// composition.
type Mode string

const (
	// ModeChat renders free-form dialogue through the chat template, with
	// the character context as the system message.
	ModeChat Mode = "chat"

	// ModeInstruct renders through the instruction template, with the
	// custom system message.
	ModeInstruct Mode = "instruct"

	// ModeChatInstruct nests a chat-rendered dialogue inside an
	// instruction-style command pair.
	ModeChatInstruct Mode = "chat-instruct"
)

// DefaultChatTemplate formats dialogue as "Name: text" lines.
const DefaultChatTemplate = "{{range .messages}}" +
	"{{if eq .role \"system\"}}{{.content}}\n\n" +
	"{{else if eq .role \"user\"}}{{$.name1}}: {{.content}}\n" +
	"{{else}}{{$.name2}}: {{.content}}\n{{end}}" +
	"{{end}}" +
	"{{if .add_generation_prompt}}{{.name2}}:{{end}}"

// DefaultInstructionTemplate is the ChatML format.
const DefaultInstructionTemplate = "{{range .messages}}" +
	"<|im_start|>{{.role}}\n{{.content}}<|im_end|>\n" +
	"{{end}}" +
	"{{if .add_generation_prompt}}<|im_start|>assistant\n{{end}}"

// DefaultChatInstructCommand wraps a chat transcript in an instruction for
// chat-instruct mode. <|character|> and <|prompt|> are substituted during
// composition.
const DefaultChatInstructCommand = "Continue the chat dialogue below. " +
	"Write a single reply for the character \"<|character|>\".\n\n<|prompt|>"

// State carries everything one prompt build needs. It is owned by the
// caller for the duration of a generation request and treated as read-mostly
// input, except that StoppingStrings consumes ExtraStoppingStrings.
// Concurrent requests must use independent copies.
type State struct {
	Mode Mode

	// Name1 and Name2 are the user and assistant display names.
	Name1 string
	Name2 string

	// Context is the free-text persona/scenario used as the system message
	// in chat modes. {{user}}, {{char}}, <USER>, and <BOT> placeholders are
	// substituted with the display names.
	Context string

	// CustomSystemMessage is the system message for instruct mode and for
	// the outer pair in chat-instruct mode.
	CustomSystemMessage string

	// ChatTemplate and InstructionTemplate are chat templates in the
	// engine's syntax (see the template package).
	ChatTemplate        string
	InstructionTemplate string

	// ChatInstructCommand is the instruction wrapped around the chat
	// transcript in chat-instruct mode.
	ChatInstructCommand string

	History History

	// TruncationLength is the model context window; MaxNewTokens is the
	// output length reserved for generation. Their difference is the
	// prompt's token budget.
	TruncationLength int
	MaxNewTokens     int

	// ExtraStoppingStrings are caller-supplied stop strings merged into
	// the probed ones. StoppingStrings consumes and clears this list.
	ExtraStoppingStrings []string

	// Stream indicates the enclosing generation loop streams output. The
	// prompt build itself ignores it.
	Stream bool
}

// Validate checks preconditions that must hold before any generation is
// attempted. Chat modes require an assistant display name.
func (s *State) Validate() error {
	if (s.Mode == ModeChat || s.Mode == ModeChatInstruct) && s.Name2 == "" {
		return ErrNoCharacter
	}
	return nil
}
