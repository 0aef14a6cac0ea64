package generator

import (
	"fmt"
	"strings"
)

// DefaultCharacter stars in generated stories when the user has no
// favorite cartoons on file.
const DefaultCharacter = "SpongeBob"

// BuildStoryPrompt assembles the instruction sent to the generative model.
// Pure string construction; input validation is the caller's job.
func BuildStoryPrompt(topic, subject, mainCharacter string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Create an educational comic story for children about %q in the subject of %s.\n", topic, subject))
	sb.WriteString(fmt.Sprintf("The main character should be %s.\n\n", mainCharacter))

	sb.WriteString("Format the response as a JSON object with this structure:\n")
	sb.WriteString(`{
  "title": "Story title",
  "panels": [
    {
      "character": "character_name",
      "characterName": "Character Display Name",
      "text": "Dialogue and educational content",
      "background": "Scene description"
    }
  ]
}
`)

	sb.WriteString(`
Requirements:
- Make it fun and educational for kids aged 5-12
- Include 4-6 panels
- Explain the topic clearly with examples
- Use simple language
- Make it engaging with the cartoon character
- Include interactive elements when possible
`)

	sb.WriteString(fmt.Sprintf("\nTopic: %s\nSubject: %s\nCharacter: %s\n", topic, subject, mainCharacter))
	return sb.String()
}

// MainCharacter picks the story's lead: the user's first favorite cartoon,
// then the request's preference list, then the fixed default.
func MainCharacter(userFavorites, requestFavorites []string) string {
	for _, list := range [][]string{userFavorites, requestFavorites} {
		for _, name := range list {
			if strings.TrimSpace(name) != "" {
				return name
			}
		}
	}
	return DefaultCharacter
}
