package converter

import "time"

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID          int64      `db:"id"`
	Name        string     `db:"name"`
	Brand       string     `db:"brand"`
	Category    string     `db:"category"`
	Price       int64      `db:"price"`
	StockLevel  int64      `db:"stock_level"`
	Rating      float64    `db:"rating"`
	DietaryTag  string     `db:"dietary_tag"`
	Description string     `db:"description"`
	ImageURL    string     `db:"image_url"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at"`
}

// RecommendationModel представляет запись таблицы recommendations в PostgreSQL.
type RecommendationModel struct {
	ID                 int64     `db:"id"`
	UserID             *int64    `db:"user_id"`
	InputProduct       string    `db:"input_product"`
	RecommendedProduct string    `db:"recommended_product"`
	Similarity         float64   `db:"similarity"`
	CreatedAt          time.Time `db:"created_at"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	EventKey    int64      `db:"event_key"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
