package api

import "time"

type FindRequest struct {
	Words []string `json:"words"`
}

type FindResponse struct {
	Input   []string `json:"input"`
	Matches []string `json:"matches"`
	Cached  bool     `json:"cached"`
}

type VocabularyResponse struct {
	Size         int       `json:"size"`
	Source       string    `json:"source"`
	LoadedAt     time.Time `json:"loaded_at"`
	Separator    string    `json:"separator"`
	CacheSize    int       `json:"cache_size"`
	CacheHitRate float64   `json:"cache_hit_rate"`
}
