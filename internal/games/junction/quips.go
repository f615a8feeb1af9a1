package junction

import "math/rand"

// gameOverQuips are shown on the game over screen.
var gameOverQuips = []string{
	"that'll buff right out... probably",
	"well, THAT happened",
	"insurance adjusters are on their way",
	"not your finest moment, chief",
	"physics: 1, you: 0",
	"red means stop. remember?",
	"that one is going to be expensive",
	"maybe traffic control isn't your calling",
	"nobody was hurt. in the simulation.",
	"you had ONE job",
	"the lights were merely a suggestion, apparently",
	"call the tow trucks",
	"and the award for worst junction goes to...",
	"the traffic cones have been notified",
}

func pickQuip(rng *rand.Rand) string {
	return gameOverQuips[rng.Intn(len(gameOverQuips))]
}
