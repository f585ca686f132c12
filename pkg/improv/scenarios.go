package improv

// DefaultScenarios is the stock prompt pool the host draws from.
func DefaultScenarios() []string {
	return []string{
		"You're a barista who has to break the news that the espresso machine is haunted.",
		"You're an astronaut giving a house tour of the International Space Station to your in-laws.",
		"You're a pirate captain running a very formal job interview for a new parrot.",
		"You're a wedding DJ who only knows one song and the couple just noticed.",
		"You're a time traveler trying to return a library book that's 400 years overdue.",
		"You're a superhero whose only power is perfect parallel parking, mid-bank-heist.",
		"You're a chef on live TV who just realized the secret ingredient is something you're allergic to.",
		"You're a tour guide at a museum where every exhibit is just things from your garage.",
	}
}
