package fakers

import (
	"github.com/josuecastillodev/ecommerce/app/services"
)

// CategorySeed is a root category and the names of its subcategories.
type CategorySeed struct {
	Input    services.CreateCategoryInput
	Children []string
}

type BrandSeed struct {
	Input      services.CreateBrandInput
	Categories []CategorySeed
}

func strPtr(s string) *string { return &s }

// GlobalCategories are shared by every brand.
func GlobalCategories() []CategorySeed {
	return []CategorySeed{
		{
			Input:    services.CreateCategoryInput{Name: "Ofertas", Description: strPtr("Productos con descuento")},
			Children: []string{"Liquidación", "Temporada"},
		},
		{
			Input:    services.CreateCategoryInput{Name: "Novedades", Description: strPtr("Lo más reciente del catálogo")},
			Children: nil,
		},
	}
}

func Brands() []BrandSeed {
	return []BrandSeed{
		{
			Input: services.CreateBrandInput{
				Name:           "Moda Norte",
				PrimaryColor:   "#1A2B3C",
				SecondaryColor: "#F5F5F5",
				Description:    strPtr("Ropa y accesorios"),
			},
			Categories: []CategorySeed{
				{Input: services.CreateCategoryInput{Name: "Mujer"}, Children: []string{"Vestidos", "Blusas", "Pantalones"}},
				{Input: services.CreateCategoryInput{Name: "Hombre"}, Children: []string{"Camisas", "Jeans"}},
				{Input: services.CreateCategoryInput{Name: "Calzado"}, Children: []string{"Tenis", "Botas"}},
			},
		},
		{
			Input: services.CreateBrandInput{
				Name:        "Casa Sur",
				Description: strPtr("Hogar y decoración"),
			},
			Categories: []CategorySeed{
				{Input: services.CreateCategoryInput{Name: "Cocina"}, Children: []string{"Sartenes", "Utensilios"}},
				{Input: services.CreateCategoryInput{Name: "Decoración"}, Children: []string{"Cuadros", "Lámparas"}},
			},
		},
	}
}
