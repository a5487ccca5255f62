package catalog

import (
	"time"

	"github.com/moodtune/moodtune/internal/domain/mood"
	"github.com/moodtune/moodtune/internal/domain/track"
)

// builtin is the hand-authored fallback dataset, five tracks per mood so a
// mood-based selection can always fill a typical request on its own.
var builtin = []track.Track{
	// happy
	st("st-001", "Walking on Sunshine", "Katrina and the Waves", "Walking on Sunshine", 239, "pop rock", mood.Happy),
	st("st-002", "Happy", "Pharrell Williams", "G I R L", 233, "pop", mood.Happy),
	st("st-003", "Good as Hell", "Lizzo", "Cuz I Love You", 159, "pop", mood.Happy),
	st("st-004", "Uptown Funk", "Mark Ronson, Bruno Mars", "Uptown Special", 270, "funk pop", mood.Happy),
	st("st-005", "As It Was", "Harry Styles", "Harry's House", 167, "pop", mood.Happy),

	// sad
	st("st-011", "Someone Like You", "Adele", "21", 285, "pop soul", mood.Sad),
	st("st-012", "Heat Waves", "Glass Animals", "Dreamland", 238, "indie pop", mood.Sad),
	st("st-013", "Skinny Love", "Bon Iver", "For Emma, Forever Ago", 238, "indie folk", mood.Sad),
	st("st-014", "Everybody Hurts", "R.E.M.", "Automatic for the People", 323, "alternative rock", mood.Sad),
	st("st-015", "Liability", "Lorde", "Melodrama", 171, "art pop", mood.Sad),

	// calm
	st("st-021", "Weightless", "Marconi Union", "Weightless", 480, "ambient", mood.Calm),
	st("st-022", "Clair de Lune", "Claude Debussy", "Suite bergamasque", 300, "classical", mood.Calm),
	st("st-023", "Holocene", "Bon Iver", "Bon Iver, Bon Iver", 337, "indie folk", mood.Calm),
	st("st-024", "Sunset Lover", "Petit Biscuit", "Petit Biscuit", 237, "chillwave", mood.Calm),
	st("st-025", "Bloom", "ODESZA", "In Return", 257, "chillwave electronic", mood.Calm),

	// energetic
	st("st-031", "Titanium", "David Guetta, Sia", "Nothing but the Beat", 245, "electronic dance", mood.Energetic),
	st("st-032", "Stronger", "Kanye West", "Graduation", 311, "hip-hop", mood.Energetic),
	st("st-033", "Don't Stop Me Now", "Queen", "Jazz", 209, "rock", mood.Energetic),
	st("st-034", "Physical", "Dua Lipa", "Future Nostalgia", 193, "dance pop", mood.Energetic),
	st("st-035", "Eye of the Tiger", "Survivor", "Eye of the Tiger", 246, "rock", mood.Energetic),

	// excited
	st("st-041", "Can't Stop the Feeling!", "Justin Timberlake", "Trolls", 236, "dance pop", mood.Excited),
	st("st-042", "Levitating", "Dua Lipa", "Future Nostalgia", 203, "disco pop", mood.Excited),
	st("st-043", "I Gotta Feeling", "The Black Eyed Peas", "The E.N.D.", 289, "dance pop", mood.Excited),
	st("st-044", "Shut Up and Dance", "Walk the Moon", "Talking Is Hard", 199, "pop rock", mood.Excited),
	st("st-045", "Dynamite", "BTS", "BE", 199, "disco pop", mood.Excited),

	// romantic
	st("st-051", "All of Me", "John Legend", "Love in the Future", 269, "r&b soul", mood.Romantic),
	st("st-052", "Perfect", "Ed Sheeran", "Divide", 263, "pop", mood.Romantic),
	st("st-053", "At Last", "Etta James", "At Last!", 181, "soul", mood.Romantic),
	st("st-054", "Adorn", "Miguel", "Kaleidoscope Dream", 193, "r&b", mood.Romantic),
	st("st-055", "La Vie en rose", "Edith Piaf", "Chansons parisiennes", 197, "chanson", mood.Romantic),

	// angry
	st("st-061", "Break Stuff", "Limp Bizkit", "Significant Other", 166, "nu metal", mood.Angry),
	st("st-062", "Killing in the Name", "Rage Against the Machine", "Rage Against the Machine", 314, "rap metal", mood.Angry),
	st("st-063", "Bulls on Parade", "Rage Against the Machine", "Evil Empire", 231, "rap metal", mood.Angry),
	st("st-064", "Duality", "Slipknot", "Vol. 3: (The Subliminal Verses)", 253, "metal", mood.Angry),
	st("st-065", "You Oughta Know", "Alanis Morissette", "Jagged Little Pill", 249, "alternative rock", mood.Angry),

	// neutral
	st("st-071", "Anti-Hero", "Taylor Swift", "Midnights", 200, "pop", mood.Neutral),
	st("st-072", "Dreams", "Fleetwood Mac", "Rumours", 257, "soft rock", mood.Neutral),
	st("st-073", "Breathe", "Telepopmusik", "Genetic World", 279, "downtempo", mood.Neutral),
	st("st-074", "Midnight City", "M83", "Hurry Up, We're Dreaming", 244, "synth-pop", mood.Neutral),
	st("st-075", "Here Comes the Sun", "The Beatles", "Abbey Road", 185, "rock", mood.Neutral),
}

func st(id, title, artist, album string, seconds int, genre string, m mood.Emotion) track.Track {
	return track.Track{
		ID:         id,
		Title:      title,
		Artist:     artist,
		Album:      album,
		Duration:   time.Duration(seconds) * time.Second,
		ArtworkURL: track.PlaceholderArtwork,
		Genre:      genre,
		Mood:       m,
	}
}
