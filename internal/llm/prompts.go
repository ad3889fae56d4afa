package llm

import _ "embed"

var (
	//go:embed prompts/answer_v1.txt
	answerPromptV1 string
)

// AnswerPromptTemplate returns the grounding template text and whether the version was recognized.
func AnswerPromptTemplate(version string) (string, bool) {
	switch version {
	case "v1":
		return answerPromptV1, true
	default:
		return answerPromptV1, false
	}
}
