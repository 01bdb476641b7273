package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Внутренние ошибки с векторами и индексом
	ErrEmptyVector       = fmt.Errorf("vector embedding is empty")
	ErrDimensionMismatch = fmt.Errorf("vector dimension mismatch")
	ErrIndexNotBuilt     = fmt.Errorf("embedding index is not built")
	ErrEncoderFailure    = fmt.Errorf("text encoder backend failure")
	ErrEmptyCorpus       = fmt.Errorf("empty corpus")

	// Ошибки каталога
	ErrEmptyCatalog      = fmt.Errorf("catalog snapshot is empty")
	ErrProductNotFound   = fmt.Errorf("product not found")
	ErrInvalidCatalogCSV = fmt.Errorf("invalid catalog csv")
	ErrObjectKeyRequired = fmt.Errorf("catalog object key is required")

	// 400 Bad Request
	ErrStatusBadRequest    = fmt.Errorf("bad request")
	ErrMissingFields       = fmt.Errorf("missing required fields")
	ErrProductNameRequired = fmt.Errorf("product name is required")
	ErrInvalidPrice        = fmt.Errorf("invalid price")
	ErrPricePrecision      = fmt.Errorf("price must have at most 2 decimal places")
	ErrInvalidRating       = fmt.Errorf("min rating must be within [0, 5]")
	ErrInvalidMaxResults   = fmt.Errorf("max results must be positive")

	// 500
	ErrInternalServerError = fmt.Errorf("internal server error")

	// Конфигурация
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
