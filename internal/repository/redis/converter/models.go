package converter

// RankedSubstituteRedisModel — кэшируемое представление одного заменителя.
type RankedSubstituteRedisModel struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	Category    string  `json:"category"`
	Price       int64   `json:"price"`
	StockLevel  int64   `json:"stock_level"`
	Rating      float64 `json:"rating"`
	DietaryTag  string  `json:"dietary_tag"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	Similarity  float64 `json:"similarity"`
}
