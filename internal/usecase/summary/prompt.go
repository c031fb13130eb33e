package summary

// promptHeader is the fixed instruction prompt for a legal consultation
// summary. The transcript text is appended verbatim after it.
const promptHeader = `You are a legal assistant summarizing a client consultation for a law firm (e.g. immigration, family, civil).

Please provide a structured summary including:
1. Client Information & Core Issue
2. Key Facts & Timeline
3. Potential Legal Strategies discussed
4. Next Steps & Required Documents for the client
5. Recommended Follow-up Actions for the law firm

Format the response in Markdown.

Here is the consultation transcript:
`

func buildPrompt(transcriptText string) string {
	return promptHeader + transcriptText
}
