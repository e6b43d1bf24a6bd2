package llm

// Prompt library keys. A promptKey outside the library is treated as a raw
// instruction string.
const (
	PromptSummarize          = "summarize"
	PromptDraftReply         = "draft_reply"
	PromptExtractActionItems = "extract_action_items"
	PromptAnalyzeSentiment   = "analyze_sentiment"
)

// promptLibrary maps known prompt keys to their instructions.
var promptLibrary = map[string]string{
	PromptSummarize: "Summarize the following content in 2-3 sentences. " +
		"Be concrete and keep names, dates, and amounts.",
	PromptDraftReply: "Draft a short, professional reply to the following message. " +
		"Match the sender's tone. Return only the reply body, no subject line.",
	PromptExtractActionItems: "Extract the action items from the following content " +
		"as a plain bulleted list. If there are none, return an empty response.",
	PromptAnalyzeSentiment: "Analyze the sentiment of the following content. " +
		"Answer with one of: positive, neutral, negative, followed by a one-sentence justification.",
}

// Instruction resolves a prompt key against the library, falling back to the
// key itself as a raw instruction.
func Instruction(promptKey string) string {
	if inst, ok := promptLibrary[promptKey]; ok {
		return inst
	}
	return promptKey
}
