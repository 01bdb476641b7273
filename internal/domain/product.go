package domain

import "time"

// Product описывает товар каталога
type Product struct {
	ID          int64
	Name        string
	Brand       string
	Category    string
	Price       int64 // Цена хранится в копейках
	StockLevel  int64 // 0 — товара нет в наличии
	Rating      float64
	DietaryTag  string // "None", если ограничений нет
	Description string
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

func NewProduct(name, brand, category string, price, stockLevel int64, rating float64, dietaryTag, description, imageURL string) *Product {
	return &Product{
		Name:        name,
		Brand:       brand,
		Category:    category,
		Price:       price,
		StockLevel:  stockLevel,
		Rating:      rating,
		DietaryTag:  dietaryTag,
		Description: description,
		ImageURL:    imageURL,
	}
}

// InStock сообщает, доступен ли товар для подбора замены.
func (p *Product) InStock() bool {
	return p.StockLevel > 0
}

// EmbeddingText возвращает текст, из которого строится вектор товара:
// название и описание через пробел (пустое описание допускается).
func (p *Product) EmbeddingText() string {
	if p.Description == "" {
		return p.Name
	}
	return p.Name + " " + p.Description
}
