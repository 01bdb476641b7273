package usecase_test

import (
	"strings"
	"testing"

	"github.com/DRSN-tech/substitution-engine/internal/usecase"
	"github.com/DRSN-tech/substitution-engine/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCatalogSnapshot_WalmartStyleHeader(t *testing.T) {
	csv := strings.Join([]string{
		"Product Name,Brand,Category,Sale Price,Stock Level,Rating,Dietary Tag,Description,Image URL",
		"Pantene Pro-V Shampoo,Pantene,Hair Care,6.49,8,4.2,None,nourishing shampoo,http://img/1.png",
	}, "\n")

	products, err := usecase.ParseCatalogSnapshot(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, products, 1)

	p := products[0]
	assert.Equal(t, "Pantene Pro-V Shampoo", p.Name)
	assert.Equal(t, "Pantene", p.Brand)
	assert.Equal(t, "Hair Care", p.Category)
	assert.Equal(t, int64(649), p.Price)
	assert.Equal(t, int64(8), p.StockLevel)
	assert.Equal(t, 4.2, p.Rating)
	assert.Equal(t, "None", p.DietaryTag)
	assert.Equal(t, "http://img/1.png", p.ImageURL)
}

func TestParseCatalogSnapshot_SnakeCaseHeader(t *testing.T) {
	csv := strings.Join([]string{
		"name,brand,category,price,stock_level,rating,dietary_tag,description,image_url",
		"Whole Wheat Bread,Wonder,Bakery,3.50,12,4.0,None,fresh bread,",
	}, "\n")

	products, err := usecase.ParseCatalogSnapshot(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, int64(350), products[0].Price)
}

func TestParseCatalogSnapshot_MissingRequiredColumns(t *testing.T) {
	csv := "brand,category,rating\nPantene,Hair Care,4.2\n"

	_, err := usecase.ParseCatalogSnapshot(strings.NewReader(csv))
	assert.ErrorIs(t, err, e.ErrInvalidCatalogCSV)
}

func TestParseCatalogSnapshot_EmptyInput(t *testing.T) {
	_, err := usecase.ParseCatalogSnapshot(strings.NewReader(""))
	assert.ErrorIs(t, err, e.ErrInvalidCatalogCSV)
}

func TestParseCatalogSnapshot_SkipsRowsWithoutName(t *testing.T) {
	csv := strings.Join([]string{
		"name,price",
		"Pantene Pro-V Shampoo,6.49",
		",1.99",
		"   ,2.99",
		"Dove Intense Repair Shampoo,5.79",
	}, "\n")

	products, err := usecase.ParseCatalogSnapshot(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Pantene Pro-V Shampoo", products[0].Name)
	assert.Equal(t, "Dove Intense Repair Shampoo", products[1].Name)
}

func TestParseCatalogSnapshot_DuplicateNamesFirstWins(t *testing.T) {
	csv := strings.Join([]string{
		"name,price",
		"Pantene Pro-V Shampoo,6.49",
		"PANTENE PRO-V SHAMPOO,9.99",
	}, "\n")

	products, err := usecase.ParseCatalogSnapshot(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, int64(649), products[0].Price)
}

func TestParseCatalogSnapshot_Defaults(t *testing.T) {
	csv := strings.Join([]string{
		"name,price,description",
		"Almond Flour Bread,5.50,gluten free bread from almond flour",
		"Pantene Pro-V Shampoo,6.49,nourishing shampoo",
	}, "\n")

	products, err := usecase.ParseCatalogSnapshot(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, 4.0, products[0].Rating)
	assert.Equal(t, int64(1), products[0].StockLevel)
	assert.Equal(t, "Gluten-Free", products[0].DietaryTag)
	assert.Equal(t, "None", products[1].DietaryTag)
}

func TestParseCatalogSnapshot_InvalidRating(t *testing.T) {
	for _, rating := range []string{"abc", "-1", "5.1"} {
		csv := "name,price,rating\nPantene Pro-V Shampoo,6.49," + rating + "\n"

		_, err := usecase.ParseCatalogSnapshot(strings.NewReader(csv))
		assert.ErrorIs(t, err, e.ErrInvalidRating, "rating %q", rating)
	}
}

func TestParseCatalogSnapshot_InvalidStock(t *testing.T) {
	csv := "name,price,stock_level\nPantene Pro-V Shampoo,6.49,-3\n"

	_, err := usecase.ParseCatalogSnapshot(strings.NewReader(csv))
	assert.ErrorIs(t, err, e.ErrInvalidCatalogCSV)
}

func TestParsePriceToCents(t *testing.T) {
	cents, err := usecase.ParsePriceToCents("5.99")
	require.NoError(t, err)
	assert.Equal(t, int64(599), cents)

	cents, err = usecase.ParsePriceToCents("12")
	require.NoError(t, err)
	assert.Equal(t, int64(1200), cents)

	cents, err = usecase.ParsePriceToCents("0")
	require.NoError(t, err)
	assert.Equal(t, int64(0), cents)

	_, err = usecase.ParsePriceToCents("")
	assert.ErrorIs(t, err, e.ErrInvalidPrice)

	_, err = usecase.ParsePriceToCents("free")
	assert.ErrorIs(t, err, e.ErrInvalidPrice)

	_, err = usecase.ParsePriceToCents("-1.00")
	assert.ErrorIs(t, err, e.ErrInvalidPrice)

	_, err = usecase.ParsePriceToCents("5.999")
	assert.ErrorIs(t, err, e.ErrPricePrecision)
}
