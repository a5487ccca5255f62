package recommend

import (
	"github.com/moodtune/moodtune/internal/app/ambient"
)

// Playlist is a derived, non-persisted contextual playlist. Seeds are
// representative track titles the view layer can resolve or display as-is.
type Playlist struct {
	Title       string
	Description string
	Seeds       []string
	Accent      string // visual accent color
}

// weatherPlaylists is the fixed condition table. Keys are exact-match,
// lowercase condition labels; unrecognized conditions contribute nothing.
var weatherPlaylists = map[string]Playlist{
	"sunny":    sunnyPlaylist,
	"clear":    sunnyPlaylist,
	"rainy":    rainyPlaylist,
	"rain":     rainyPlaylist,
	"cloudy":   cloudyPlaylist,
	"overcast": cloudyPlaylist,
}

var (
	sunnyPlaylist = Playlist{
		Title:       "Sunny Day Vibes",
		Description: "Bright, feel-good tracks for clear skies",
		Seeds:       []string{"Walking on Sunshine", "Here Comes the Sun", "Good as Hell"},
		Accent:      "#f6b93b",
	}
	rainyPlaylist = Playlist{
		Title:       "Rainy Day Mellow",
		Description: "Soft and wistful songs for a rainy window",
		Seeds:       []string{"Heat Waves", "Holocene", "Skinny Love"},
		Accent:      "#60a3bc",
	}
	cloudyPlaylist = Playlist{
		Title:       "Overcast Easy",
		Description: "Steady mid-tempo picks for grey skies",
		Seeds:       []string{"Dreams", "Midnight City", "Breathe"},
		Accent:      "#aaa69d",
	}
)

// timeOfDayPlaylists is the fixed 4-way bucket table; unrecognized buckets
// contribute nothing.
var timeOfDayPlaylists = map[ambient.TimeOfDay]Playlist{
	ambient.Morning: {
		Title:       "Morning Boost",
		Description: "Wake-up energy to start the day",
		Seeds:       []string{"Can't Stop the Feeling!", "Happy", "Dynamite"},
		Accent:      "#fad390",
	},
	ambient.Afternoon: {
		Title:       "Afternoon Flow",
		Description: "Keep the momentum through the middle of the day",
		Seeds:       []string{"Uptown Funk", "Levitating", "As It Was"},
		Accent:      "#78e08f",
	},
	ambient.Evening: {
		Title:       "Evening Unwind",
		Description: "Step down the tempo as the day closes",
		Seeds:       []string{"Sunset Lover", "Bloom", "All of Me"},
		Accent:      "#e58e26",
	},
	ambient.Night: {
		Title:       "Late Night Moods",
		Description: "Low-lit tracks for the small hours",
		Seeds:       []string{"Midnight City", "Weightless", "Clair de Lune"},
		Accent:      "#4a69bd",
	},
}

// eventPlaylists is the fixed 3-way calendar category table; events in
// unrecognized categories contribute nothing.
var eventPlaylists = map[ambient.EventCategory]Playlist{
	ambient.EventExercise: {
		Title:       "Workout Power",
		Description: "High-energy tracks to push through a session",
		Seeds:       []string{"Eye of the Tiger", "Titanium", "Stronger"},
		Accent:      "#e55039",
	},
	ambient.EventStudy: {
		Title:       "Deep Focus",
		Description: "Instrumental and ambient picks for concentration",
		Seeds:       []string{"Weightless", "Clair de Lune", "Breathe"},
		Accent:      "#38ada9",
	},
	ambient.EventRomantic: {
		Title:       "Romantic Evening",
		Description: "Soft tracks for two",
		Seeds:       []string{"At Last", "Perfect", "La Vie en rose"},
		Accent:      "#b71540",
	},
}
