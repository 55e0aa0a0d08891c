package routes

import (
	"math/rand/v2"
	"net/http"
	"strconv"

	"github.com/dmitrymomot/sprout"
)

// Joke is the response of /api/joke.
type Joke struct {
	Setup     string `json:"setup"`
	Punchline string `json:"punchline"`
	ID        int    `json:"id"`
}

var jokes = []Joke{
	{Setup: "Why do Go programmers prefer dark mode?", Punchline: "Because light attracts bugs."},
	{Setup: "How many gophers does it take to change a light bulb?", Punchline: "One, and it returns nil."},
	{Setup: "Why did the goroutine break up with the channel?", Punchline: "It never got a response."},
	{Setup: "What is a web server's favourite plant?", Punchline: "A sprout, it handles every route."},
}

// joke returns a random joke, or the one selected with ?id=.
func joke(c sprout.Context) error {
	id := rand.IntN(len(jokes))
	if raw := c.Query("id"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return sprout.ErrBadRequest("id must be an integer.", sprout.WithError(err))
		}
		if n < 0 || n >= len(jokes) {
			return sprout.ErrNotFound("No joke with this id.")
		}
		id = n
	}

	j := jokes[id]
	j.ID = id
	return c.JSON(http.StatusOK, j)
}
