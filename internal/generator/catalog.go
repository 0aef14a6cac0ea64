package generator

import (
	"fmt"
	"strings"

	"storyquest/internal/models"
)

// templateCatalog is the hand-authored fallback story set, indexed by exact
// (subject, topic) pairs. Lookup is case-sensitive with no fuzzy matching.
var templateCatalog = map[string]map[string]models.StoryData{
	"Math": {
		"Addition": {
			Title: "SpongeBob's Krabby Patty Math Adventure",
			Panels: []models.StoryPanel{
				{
					Character:     "spongebob",
					CharacterName: "SpongeBob SquarePants",
					Text:          "Hi there! I'm SpongeBob and I love making Krabby Patties! Today I need to learn about addition to make the perfect number of patties!",
					Background:    "The Krusty Krab kitchen with cooking equipment",
				},
				{
					Character:     "spongebob",
					CharacterName: "SpongeBob SquarePants",
					Text:          "Mr. Krabs asked me to make patties for today! I have 2 patties ready, and I need to make 3 more. Let me count: 2 + 3 = ?",
					Background:    "SpongeBob counting patties on the grill",
				},
				{
					Character:     "spongebob",
					CharacterName: "SpongeBob SquarePants",
					Text:          "Let me use my fingers to help! 2 patties plus 3 more patties... that's 5 patties total! 2 + 3 = 5!",
					Background:    "SpongeBob showing fingers while counting",
				},
				{
					Character:     "spongebob",
					CharacterName: "SpongeBob SquarePants",
					Text:          "Fantastic! Now I know that when we ADD numbers together, we get a bigger number! Addition helps me make the right amount of Krabby Patties!",
					Background:    "SpongeBob proudly showing 5 perfectly cooked Krabby Patties",
				},
			},
		},
		"Multiplication": {
			Title: "Pokemon Math Training with Pikachu",
			Panels: []models.StoryPanel{
				{
					Character:     "pikachu",
					CharacterName: "Pikachu",
					Text:          "Pika pika! I'm Pikachu and I love training! But today I need to learn multiplication to become stronger!",
					Background:    "Pokemon training ground with Pokeballs",
				},
				{
					Character:     "pikachu",
					CharacterName: "Pikachu",
					Text:          "I have 3 groups of Pokeballs, and each group has 4 Pokeballs. How many Pokeballs do I have in total?",
					Background:    "3 groups of 4 Pokeballs each, clearly separated",
				},
				{
					Character:     "pikachu",
					CharacterName: "Pikachu",
					Text:          "Let me count them all! Group 1: 4 balls, Group 2: 4 balls, Group 3: 4 balls. That's 4 + 4 + 4 = 12!",
					Background:    "Pikachu pointing at each group while counting",
				},
				{
					Character:     "pikachu",
					CharacterName: "Pikachu",
					Text:          "But there's a faster way! 3 groups × 4 balls = 12 balls total! Multiplication is like repeated addition! Pika pika!",
					Background:    "Pikachu celebrating with electric sparks and all 12 Pokeballs",
				},
			},
		},
	},
	"Science": {
		"Plants": {
			Title: "Dora's Plant Adventure",
			Panels: []models.StoryPanel{
				{
					Character:     "dora",
					CharacterName: "Dora the Explorer",
					Text:          "¡Hola! I'm Dora! Today we're going on an adventure to learn about plants! Plants are living things that grow everywhere!",
					Background:    "Dora in a beautiful garden with various plants",
				},
				{
					Character:     "dora",
					CharacterName: "Dora the Explorer",
					Text:          "Look at this plant! It has roots that drink water from the soil, a stem that stands tall, and leaves that make food from sunlight!",
					Background:    "Close-up of a plant showing roots, stem, and leaves",
				},
				{
					Character:     "dora",
					CharacterName: "Dora the Explorer",
					Text:          "Plants need four things to grow: water, sunlight, air, and soil. Just like we need food and water, plants need these to be healthy!",
					Background:    "Dora pointing to the sun, watering a plant, showing soil and air",
				},
				{
					Character:     "dora",
					CharacterName: "Dora the Explorer",
					Text:          "¡Excelente! Plants are amazing! They give us oxygen to breathe and food to eat. Let's take care of plants everywhere we go!",
					Background:    "Dora surrounded by healthy, happy plants and flowers",
				},
			},
		},
	},
	"English": {
		"Reading": {
			Title: "Pokemon Reading Adventure",
			Panels: []models.StoryPanel{
				{
					Character:     "pikachu",
					CharacterName: "Pikachu",
					Text:          "Pika pika! Reading is one of my favorite activities! Books take me on amazing adventures without leaving home!",
					Background:    "Pikachu sitting with a pile of colorful books",
				},
				{
					Character:     "pikachu",
					CharacterName: "Pikachu",
					Text:          "When I read, I look at each word carefully. I sound out letters: C-A-T makes 'cat'! Reading gets easier with practice!",
					Background:    "Pikachu pointing at words in an open book",
				},
				{
					Character:     "pikachu",
					CharacterName: "Pikachu",
					Text:          "Books have stories about brave Pokemon, exciting battles, and faraway places! Every book teaches me something new!",
					Background:    "Pikachu imagining scenes from adventure books floating around",
				},
				{
					Character:     "pikachu",
					CharacterName: "Pikachu",
					Text:          "The more I read, the smarter I become! Reading helps me learn new words and understand the world better! Pika pika!",
					Background:    "Pikachu happily surrounded by books and floating words",
				},
			},
		},
	},
	"Social": {
		"Friendship": {
			Title: "SpongeBob's Friendship Lesson",
			Panels: []models.StoryPanel{
				{
					Character:     "spongebob",
					CharacterName: "SpongeBob SquarePants",
					Text:          "Hi friends! I'm SpongeBob and I love making friends! Good friends make life so much more fun and happy!",
					Background:    "SpongeBob with Patrick, Sandy, and Squidward in Bikini Bottom",
				},
				{
					Character:     "spongebob",
					CharacterName: "SpongeBob SquarePants",
					Text:          "Being a good friend means being kind, sharing, and helping others when they need it. I always try to help my friends!",
					Background:    "SpongeBob helping Patrick with a problem",
				},
				{
					Character:     "spongebob",
					CharacterName: "SpongeBob SquarePants",
					Text:          "Sometimes friends disagree, and that's okay! The important thing is to talk about it and say sorry when we make mistakes.",
					Background:    "SpongeBob and Patrick talking things out after a disagreement",
				},
				{
					Character:     "spongebob",
					CharacterName: "SpongeBob SquarePants",
					Text:          "Friends care about each other and have fun together! Being a good friend makes you feel happy inside! I'm ready to be your friend!",
					Background:    "SpongeBob playing happily with all his friends",
				},
			},
		},
	},
}

// LookupTemplate returns the catalog story for an exact (subject, topic) pair.
func LookupTemplate(subject, topic string) (models.StoryData, bool) {
	topics, ok := templateCatalog[subject]
	if !ok {
		return models.StoryData{}, false
	}
	story, ok := topics[topic]
	return story, ok
}

// GenericStory synthesizes a four-panel placeholder story for topics the
// catalog does not cover. Every panel stars the same main character.
func GenericStory(topic, subject, mainCharacter string) models.StoryData {
	character := strings.ToLower(mainCharacter)
	return models.StoryData{
		Title: fmt.Sprintf("Learning About %s", topic),
		Panels: []models.StoryPanel{
			{
				Character:     character,
				CharacterName: mainCharacter,
				Text:          fmt.Sprintf("Hi there! Today we're going to learn about %s in %s. This is going to be so much fun!", topic, subject),
				Background:    "A colorful classroom setting",
			},
			{
				Character:     character,
				CharacterName: mainCharacter,
				Text:          fmt.Sprintf("%s is really interesting! Let me explain what makes it special and why it's important to learn about.", topic),
				Background:    "Educational setting with books and learning materials",
			},
			{
				Character:     character,
				CharacterName: mainCharacter,
				Text:          fmt.Sprintf("Here's a fun way to remember %s: think of it like a game where you get to explore and discover new things!", topic),
				Background:    "Fun activity scene with colorful elements",
			},
			{
				Character:     character,
				CharacterName: mainCharacter,
				Text:          fmt.Sprintf("Great job learning about %s! You're doing amazing and I'm so proud of you!", topic),
				Background:    "Celebration scene with confetti and cheers",
			},
		},
	}
}
