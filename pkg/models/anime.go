package models

// Anime is the cached snapshot of one catalog entry as returned by the
// remote source. The remote API is authoritative; we never edit these
// fields locally, only store and render them.
//
// Optional fields are pointers so that "absent" survives a round trip
// through the local store instead of collapsing to a zero value.
type Anime struct {
	MalID         int      `json:"mal_id"`
	URL           string   `json:"url,omitempty"`
	Images        Images   `json:"images"`
	Trailer       *Trailer `json:"trailer,omitempty"`
	Title         string   `json:"title"`
	TitleEnglish  *string  `json:"title_english,omitempty"`
	TitleJapanese *string  `json:"title_japanese,omitempty"`
	Type          string   `json:"type,omitempty"`
	Source        string   `json:"source,omitempty"`
	Episodes      *int     `json:"episodes,omitempty"`
	Status        string   `json:"status,omitempty"`
	Airing        bool     `json:"airing,omitempty"`
	Aired         *Aired   `json:"aired,omitempty"`
	Duration      string   `json:"duration,omitempty"`
	Rating        string   `json:"rating,omitempty"`
	Score         *float64 `json:"score,omitempty"`
	ScoredBy      *int     `json:"scored_by,omitempty"`
	Rank          *int     `json:"rank,omitempty"`
	Popularity    *int     `json:"popularity,omitempty"`
	Members       *int     `json:"members,omitempty"`
	Favorites     *int     `json:"favorites,omitempty"`
	Synopsis      *string  `json:"synopsis,omitempty"`
	Background    *string  `json:"background,omitempty"`
	Season        *string  `json:"season,omitempty"`
	Year          *int     `json:"year,omitempty"`
	Genres        []Genre  `json:"genres"`
	Studios       []Genre  `json:"studios,omitempty"`
}

// Genre is the small {id, name} tag Jikan attaches to anime, manga,
// studios and producers alike.
type Genre struct {
	MalID int    `json:"mal_id"`
	Type  string `json:"type,omitempty"`
	Name  string `json:"name"`
	URL   string `json:"url,omitempty"`
}

type Image struct {
	ImageURL      string `json:"image_url,omitempty"`
	SmallImageURL string `json:"small_image_url,omitempty"`
	LargeImageURL string `json:"large_image_url,omitempty"`
}

type Images struct {
	JPG  Image `json:"jpg"`
	WebP Image `json:"webp"`
}

type Trailer struct {
	YoutubeID *string `json:"youtube_id,omitempty"`
	URL       *string `json:"url,omitempty"`
	EmbedURL  *string `json:"embed_url,omitempty"`
}

type Aired struct {
	From   *string `json:"from,omitempty"`
	To     *string `json:"to,omitempty"`
	String *string `json:"string,omitempty"`
}

// Manga mirrors the top-manga listing entries.
type Manga struct {
	MalID         int      `json:"mal_id"`
	URL           string   `json:"url,omitempty"`
	Images        Images   `json:"images"`
	Title         string   `json:"title"`
	TitleEnglish  *string  `json:"title_english,omitempty"`
	TitleJapanese *string  `json:"title_japanese,omitempty"`
	Type          string   `json:"type,omitempty"`
	Chapters      *int     `json:"chapters,omitempty"`
	Volumes       *int     `json:"volumes,omitempty"`
	Status        string   `json:"status,omitempty"`
	Publishing    bool     `json:"publishing,omitempty"`
	Score         *float64 `json:"score,omitempty"`
	Rank          *int     `json:"rank,omitempty"`
	Popularity    *int     `json:"popularity,omitempty"`
	Members       *int     `json:"members,omitempty"`
	Synopsis      *string  `json:"synopsis,omitempty"`
	Authors       []Genre  `json:"authors,omitempty"`
	Genres        []Genre  `json:"genres"`
}

// Character is one entry of an anime's cast listing.
type Character struct {
	Character struct {
		MalID  int    `json:"mal_id"`
		Images Images `json:"images"`
		Name   string `json:"name"`
	} `json:"character"`
	Role        string `json:"role"`
	VoiceActors []struct {
		Person struct {
			MalID  int    `json:"mal_id"`
			Images Images `json:"images"`
			Name   string `json:"name"`
		} `json:"person"`
		Language string `json:"language"`
	} `json:"voice_actors,omitempty"`
}

// TopCharacter is one entry of the global top-characters ranking.
type TopCharacter struct {
	MalID     int     `json:"mal_id"`
	URL       string  `json:"url,omitempty"`
	Images    Images  `json:"images"`
	Name      string  `json:"name"`
	NameKanji *string `json:"name_kanji,omitempty"`
	Favorites int     `json:"favorites"`
	About     *string `json:"about,omitempty"`
}

type Person struct {
	MalID      int     `json:"mal_id"`
	URL        string  `json:"url,omitempty"`
	Images     Images  `json:"images"`
	Name       string  `json:"name"`
	GivenName  *string `json:"given_name,omitempty"`
	FamilyName *string `json:"family_name,omitempty"`
	Favorites  int     `json:"favorites"`
	About      *string `json:"about,omitempty"`
}

type Producer struct {
	MalID  int    `json:"mal_id"`
	URL    string `json:"url,omitempty"`
	Titles []struct {
		Type  string `json:"type"`
		Title string `json:"title"`
	} `json:"titles"`
	Images      Images  `json:"images"`
	Favorites   int     `json:"favorites"`
	Count       int     `json:"count"`
	Established *string `json:"established,omitempty"`
	About       *string `json:"about,omitempty"`
}

// Recommendation wraps the related entry Jikan suggests next to a title.
type Recommendation struct {
	Entry Anime `json:"entry"`
	Votes int   `json:"votes,omitempty"`
}

type StreamingLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// AnimeTheme holds opening and ending song listings.
type AnimeTheme struct {
	Openings []string `json:"openings"`
	Endings  []string `json:"endings"`
}

type Review struct {
	MalID int `json:"mal_id"`
	User  struct {
		Username string `json:"username"`
		Images   Images `json:"images"`
	} `json:"user"`
	Score  int      `json:"score"`
	Review string   `json:"review"`
	Date   string   `json:"date,omitempty"`
	Tags   []string `json:"tags,omitempty"`
}

type RelationEntry struct {
	MalID int    `json:"mal_id"`
	Type  string `json:"type"`
	Name  string `json:"name"`
	URL   string `json:"url,omitempty"`
}

type Relation struct {
	Relation string          `json:"relation"`
	Entry    []RelationEntry `json:"entry"`
}

type Picture struct {
	JPG  Image `json:"jpg"`
	WebP Image `json:"webp"`
}
