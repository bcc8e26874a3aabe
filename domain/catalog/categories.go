package catalog

import (
	"tombraider-hub/domain/dto"
	"tombraider-hub/domain/model"
)

// DefaultGroups is the site's category table.
var DefaultGroups = []dto.CategoryGroup{
	{
		Game: "Classic Era",
		Categories: []model.PlaylistInfo{
			{Key: "tr1", PlaylistID: "PLt6e2Y9Wm2dKJmB1vV2oA1hT1Cq0uFz3k", Name: "Tomb Raider (1996)", Icon: "🏛️", Description: "Walkthroughs and secrets from the original adventure"},
			{Key: "tr2", PlaylistID: "PLt6e2Y9Wm2dLq8r0X4x5pJcYcW7hQ2nVd", Name: "Tomb Raider II", Icon: "🐉", Description: "The Dagger of Xian, level by level"},
			{Key: "tr3", PlaylistID: "PLt6e2Y9Wm2dI3Gv2x0kEoZ8yN4sQ1aBcR", Name: "Tomb Raider III", Icon: "🌴", Description: "Adventures of Lara Croft across four continents"},
			{Key: "tr4", PlaylistID: "PLt6e2Y9Wm2dNn1vP3cU7yT5rE9wQ0xLmA", Name: "The Last Revelation", Icon: "🔺", Description: "Egypt, Horus and the Tomb of Seth"},
			{Key: "tr5", PlaylistID: "PLt6e2Y9Wm2dP0oI9uY8tR7eW6qA5sD4fG", Name: "Chronicles", Icon: "📜", Description: "Four tales remembered at Lara's memorial"},
		},
	},
	{
		Game: "Core Design Finale",
		Categories: []model.PlaylistInfo{
			{Key: "aod", PlaylistID: "PLt6e2Y9Wm2dH1jK2lZ3xC4vB5nM6qW7eR", Name: "The Angel of Darkness", Icon: "🌑", Description: "Paris, Prague and the Cabal"},
		},
	},
	{
		Game: "Legend Trilogy",
		Categories: []model.PlaylistInfo{
			{Key: "legend", PlaylistID: "PLt6e2Y9Wm2dT8yU7iO6pA5sD4fG3hJ2kL", Name: "Tomb Raider: Legend", Icon: "⚔️", Description: "The search for Excalibur"},
			{Key: "anniversary", PlaylistID: "PLt6e2Y9Wm2dZ1xC2vB3nM4qW5eR6tY7uI", Name: "Anniversary", Icon: "🎂", Description: "The original reimagined"},
			{Key: "underworld", PlaylistID: "PLt6e2Y9Wm2dO9pA8sD7fG6hJ5kL4zX3cV", Name: "Underworld", Icon: "🔨", Description: "Thor's hammer and the Norse underworld"},
		},
	},
	{
		Game: "Survivor Trilogy",
		Categories: []model.PlaylistInfo{
			{Key: "tr2013", PlaylistID: "PLt6e2Y9Wm2dB2nM3qW4eR5tY6uI7oP8aS", Name: "Tomb Raider (2013)", Icon: "🏝️", Description: "Yamatai and a survivor is born"},
			{Key: "rottr", PlaylistID: "PLt6e2Y9Wm2dD3fG4hJ5kL6zX7cV8bN9mQ", Name: "Rise of the Tomb Raider", Icon: "🏔️", Description: "Siberia and the Divine Source"},
			{Key: "sottr", PlaylistID: "PLt6e2Y9Wm2dW1eR2tY3uI4oP5aS6dF7gH", Name: "Shadow of the Tomb Raider", Icon: "🌘", Description: "Paititi and the Mayan apocalypse"},
		},
	},
	{
		Game: "Channel",
		Categories: []model.PlaylistInfo{
			{Key: "shorts", PlaylistID: "PLt6e2Y9Wm2dJ9kL8zX7cV6bN5mQ4wE3rT", Name: "Shorts", Icon: "⚡", Description: "Quick tips, glitches and highlights"},
			{Key: "streams", PlaylistID: "PLt6e2Y9Wm2dY2uI3oP4aS5dF6gH7jK8lZ", Name: "Stream VODs", Icon: "🎥", Description: "Full recordings of past live streams"},
			// Announced on the site before its playlist exists.
			{Key: "next", PlaylistID: "", Name: "Next Tomb Raider", Icon: "❓", Description: "Coverage of the upcoming game"},
		},
	},
}
