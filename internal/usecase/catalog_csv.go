package usecase

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/DRSN-tech/substitution-engine/internal/domain"
	"github.com/DRSN-tech/substitution-engine/pkg/e"
	"github.com/shopspring/decimal"
)

// Значения по умолчанию для колонок, отсутствующих в снимке каталога.
const (
	defaultRating     = 4.0
	defaultStockLevel = 1
)

// ParseCatalogSnapshot читает CSV-снимок каталога. Заголовок обязателен,
// названия колонок распознаются и в snake_case, и в виде "Product Name" /
// "Sale Price". Строки с пустым названием товара пропускаются, повтор имени
// в снимке не считается ошибкой (действует первое вхождение).
func ParseCatalogSnapshot(r io.Reader) ([]domain.Product, error) {
	const op = "usecase.ParseCatalogSnapshot"

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, e.Wrap(op, fmt.Errorf("%w: %v", e.ErrInvalidCatalogCSV, err))
	}

	columns, err := mapSnapshotColumns(header)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var products []domain.Product
	seen := make(map[string]struct{})
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, e.Wrap(op, fmt.Errorf("%w: line %d: %v", e.ErrInvalidCatalogCSV, line, err))
		}

		name := strings.TrimSpace(columns.value(record, colName))
		if name == "" {
			continue
		}
		if _, ok := seen[strings.ToLower(name)]; ok {
			continue
		}

		product, err := parseSnapshotRow(columns, record, name)
		if err != nil {
			return nil, e.Wrap(op, fmt.Errorf("line %d: %w", line, err))
		}

		seen[strings.ToLower(name)] = struct{}{}
		products = append(products, *product)
	}

	return products, nil
}

// parseSnapshotRow собирает товар из одной строки снимка.
func parseSnapshotRow(columns snapshotColumns, record []string, name string) (*domain.Product, error) {
	price, err := ParsePriceToCents(columns.value(record, colPrice))
	if err != nil {
		return nil, err
	}

	description := strings.TrimSpace(columns.value(record, colDescription))

	rating := defaultRating
	if raw := strings.TrimSpace(columns.value(record, colRating)); raw != "" {
		rating, err = strconv.ParseFloat(raw, 64)
		if err != nil || rating < 0 || rating > 5 {
			return nil, e.ErrInvalidRating
		}
	}

	var stockLevel int64 = defaultStockLevel
	if raw := strings.TrimSpace(columns.value(record, colStockLevel)); raw != "" {
		stockLevel, err = strconv.ParseInt(raw, 10, 64)
		if err != nil || stockLevel < 0 {
			return nil, fmt.Errorf("%w: bad stock_level %q", e.ErrInvalidCatalogCSV, raw)
		}
	}

	dietaryTag := strings.TrimSpace(columns.value(record, colDietaryTag))
	if dietaryTag == "" {
		dietaryTag = deriveDietaryTag(description)
	}

	return domain.NewProduct(
		name,
		strings.TrimSpace(columns.value(record, colBrand)),
		strings.TrimSpace(columns.value(record, colCategory)),
		price,
		stockLevel,
		rating,
		dietaryTag,
		description,
		strings.TrimSpace(columns.value(record, colImageURL)),
	), nil
}

// ParsePriceToCents разбирает десятичную цену и переводит её в копейки.
// Цена не может быть отрицательной и точнее двух знаков после запятой.
func ParsePriceToCents(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, e.ErrInvalidPrice
	}

	price, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, e.ErrInvalidPrice
	}
	if price.IsNegative() {
		return 0, e.ErrInvalidPrice
	}

	cents := price.Shift(2)
	if !cents.IsInteger() {
		return 0, e.ErrPricePrecision
	}

	return cents.IntPart(), nil
}

// deriveDietaryTag выводит диетическую метку из описания товара.
func deriveDietaryTag(description string) string {
	if strings.Contains(strings.ToLower(description), "gluten") {
		return "Gluten-Free"
	}

	return "None"
}

// Индексы логических колонок снимка.
type snapshotColumn int

const (
	colName snapshotColumn = iota
	colBrand
	colCategory
	colPrice
	colStockLevel
	colRating
	colDietaryTag
	colDescription
	colImageURL
	colCount
)

type snapshotColumns [colCount]int

// value возвращает значение колонки или пустую строку, если колонки
// нет в заголовке или строка короче заголовка.
func (c snapshotColumns) value(record []string, col snapshotColumn) string {
	idx := c[col]
	if idx < 0 || idx >= len(record) {
		return ""
	}

	return record[idx]
}

// mapSnapshotColumns сопоставляет заголовок снимка логическим колонкам.
// Обязательны только название и цена.
func mapSnapshotColumns(header []string) (snapshotColumns, error) {
	var columns snapshotColumns
	for i := range columns {
		columns[i] = -1
	}

	for i, raw := range header {
		normalized := strings.ToLower(strings.NewReplacer(" ", "", "_", "", "-", "").Replace(strings.TrimSpace(raw)))
		switch normalized {
		case "productname", "name":
			columns[colName] = i
		case "brand":
			columns[colBrand] = i
		case "category":
			columns[colCategory] = i
		case "saleprice", "price":
			columns[colPrice] = i
		case "stocklevel", "stock":
			columns[colStockLevel] = i
		case "rating":
			columns[colRating] = i
		case "dietarytag":
			columns[colDietaryTag] = i
		case "description":
			columns[colDescription] = i
		case "imageurl", "image":
			columns[colImageURL] = i
		}
	}

	if columns[colName] < 0 || columns[colPrice] < 0 {
		return columns, fmt.Errorf("%w: header must contain product name and price columns", e.ErrInvalidCatalogCSV)
	}

	return columns, nil
}
