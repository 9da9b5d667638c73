package internal

import "strings"

// Request builders for the three exchanges with the text-generation
// service. Each request renders the relevant assets as fenced blocks whose
// first line carries the asset path, so the reply can be reintegrated.

// UpdateRequest asks the service to perform a code task over the given
// assets and return modified files as path-tagged blocks.
func UpdateRequest(codec *Codec, prompt string, assets *Collection) string {
	var buf []string

	if assets.Len() > 0 {
		buf = append(buf,
			"Please analyze the following code blocks, then I will set a task for you.",
			"The asset name will be contained as a comment in the first line of each code block.",
			"It's important to echo these comments in the response code blocks, to aid code reintegration.",
		)
		for _, a := range assets.Assets() {
			buf = append(buf, codec.Render(a))
		}
		buf = append(buf, "---")
	}

	buf = append(buf,
		prompt,
		"You don't need to return any comments; just returning code blocks is fine.",
		"Please only return modified files; you don't need to echo any unchanged files.",
	)

	return strings.Join(buf, "\n\n")
}

// QueryRequest asks for a textual answer about the given assets, no code
// blocks in the reply.
func QueryRequest(codec *Codec, prompt string, assets *Collection) string {
	var buf []string

	if assets.Len() > 0 {
		buf = append(buf,
			"Please analyze the following code blocks. I will set a task for you.",
			"The asset name will be contained as a comment in the first line of each code block.",
			"It's important to review these code blocks before responding to the query.",
		)
		for _, a := range assets.Assets() {
			buf = append(buf, codec.Render(a))
		}
		buf = append(buf, "---")
	}

	buf = append(buf,
		prompt,
		"Please provide a textual explanation or analysis only. Do not return any code blocks or code snippets.",
	)

	return strings.Join(buf, "\n\n")
}

// ResetRequest tells the service to treat the given assets as the latest
// versions, used after fetch/undo/redo to resynchronize the conversation.
func ResetRequest(codec *Codec, assets *Collection) string {
	var buf []string

	if assets.Len() > 0 {
		buf = append(buf,
			"Please use the following code blocks as the latest versions of these files.",
			"The asset name will be contained as a comment in the first line of each code block.",
			"There is no need for further response beyond an acknowledgement.",
		)
		for _, a := range assets.Assets() {
			buf = append(buf, codec.Render(a))
		}
		buf = append(buf, "---")
	}

	buf = append(buf, "Please acknowledge that these files will now be considered the latest versions for any subsequent tasks.")

	return strings.Join(buf, "\n\n")
}
