package seed

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/polattozlu/munch-gokhan/pkg/db/models"
	"github.com/polattozlu/munch-gokhan/pkg/enums"
)

func price(raw string) decimal.Decimal {
	return decimal.RequireFromString(raw)
}

func day(raw string) time.Time {
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		panic(err)
	}
	return t
}

var restaurants = []models.Restaurant{
	{
		ID:           1,
		Name:         "Burger Sarayı",
		Cuisine:      "Amerikan",
		Image:        "https://readdy.ai/api/search-image?query=gourmet%20burger%20restaurant%20interior&width=600&height=400&seq=rest1&orientation=landscape",
		Rating:       4.8,
		TotalReviews: 247,
		DeliveryTime: "20-30 dk",
		DeliveryFee:  price("5.00"),
		Description:  "En lezzetli burgerler ve çıtır patatesler",
		Address:      "Bağdat Cad. No:123, Kadıköy",
		Phone:        "0216 345 67 89",
		IsActive:     true,
	},
	{
		ID:           2,
		Name:         "Pizza Köşesi",
		Cuisine:      "İtalyan",
		Image:        "https://readdy.ai/api/search-image?query=authentic%20italian%20pizza%20restaurant&width=600&height=400&seq=rest2&orientation=landscape",
		Rating:       4.6,
		TotalReviews: 189,
		DeliveryTime: "25-35 dk",
		DeliveryFee:  price("4.50"),
		Description:  "Geleneksel İtalyan pizzaları ve makarnalar",
		Address:      "İstiklal Cad. No:456, Beyoğlu",
		Phone:        "0212 293 45 67",
		IsActive:     true,
	},
	{
		ID:           3,
		Name:         "Sushi Evi",
		Cuisine:      "Japon",
		Image:        "https://readdy.ai/api/search-image?query=modern%20japanese%20sushi%20restaurant&width=600&height=400&seq=rest3&orientation=landscape",
		Rating:       4.9,
		TotalReviews: 156,
		DeliveryTime: "30-45 dk",
		DeliveryFee:  price("7.50"),
		Description:  "Taze sushi ve Japon mutfağı lezzetleri",
		Address:      "Nişantaşı Mah. Teşvikiye Sok. No:789",
		Phone:        "0212 231 89 01",
		IsActive:     true,
	},
	{
		ID:           4,
		Name:         "Taco Festivali",
		Cuisine:      "Meksikan",
		Image:        "https://readdy.ai/api/search-image?query=vibrant%20mexican%20taco%20restaurant&width=600&height=400&seq=rest4&orientation=landscape",
		Rating:       4.4,
		TotalReviews: 203,
		DeliveryTime: "15-25 dk",
		DeliveryFee:  price("3.50"),
		Description:  "Otantik Meksikan lezzetleri ve tacolar",
		Address:      "Etiler Mah. Nispetiye Cad. No:321",
		Phone:        "0212 265 43 21",
		IsActive:     true,
	},
	{
		ID:           5,
		Name:         "Kebap Ustası",
		Cuisine:      "Türk",
		Image:        "https://readdy.ai/api/search-image?query=traditional%20turkish%20kebab%20restaurant&width=600&height=400&seq=rest5&orientation=landscape",
		Rating:       4.7,
		TotalReviews: 312,
		DeliveryTime: "20-30 dk",
		DeliveryFee:  price("4.00"),
		Description:  "Geleneksel Türk mutfağı ve kebaplar",
		Address:      "Eminönü Mah. Tarihi Çarşı No:654",
		Phone:        "0212 513 24 68",
		IsActive:     true,
	},
	{
		ID:           6,
		Name:         "Köri Ekspres",
		Cuisine:      "Hint",
		Image:        "https://readdy.ai/api/search-image?query=authentic%20indian%20curry%20restaurant&width=600&height=400&seq=rest6&orientation=landscape",
		Rating:       4.5,
		TotalReviews: 128,
		DeliveryTime: "25-40 dk",
		DeliveryFee:  price("6.00"),
		Description:  "Otantik Hint mutfağı ve baharatlı yemekler",
		Address:      "Cihangir Mah. Akarsu Cad. No:147",
		Phone:        "0212 249 76 54",
		IsActive:     true,
	},
}

var menuItems = []models.MenuItem{
	// Kebap Ustası
	{ID: 1, RestaurantID: 5, Name: "Adana Kebap", Description: "Baharatlı kıyma kebabı, pilav ve salata ile servis", Price: price("45.00"), Category: enums.MenuCategoryMain, IsAvailable: true},
	{ID: 2, RestaurantID: 5, Name: "Urfa Kebap", Description: "Az baharatlı kıyma kebabı, pilav ve salata ile", Price: price("43.00"), Category: enums.MenuCategoryMain, IsAvailable: true},
	{ID: 3, RestaurantID: 5, Name: "Türk Kahvaltısı", Description: "Peynir, zeytin, domates ve ekmekle geleneksel kahvaltı", Price: price("35.00"), Category: enums.MenuCategoryBreakfast, IsAvailable: true},
	{ID: 4, RestaurantID: 5, Name: "Baklava", Description: "Bal ve fıstıklı geleneksel tatlı", Price: price("25.00"), Category: enums.MenuCategoryDessert, IsAvailable: true},
	{ID: 5, RestaurantID: 5, Name: "Çoban Salatası", Description: "Domates, salatalık, soğan ve peynir ile taze salata", Price: price("18.00"), Category: enums.MenuCategorySalad, IsAvailable: true},
	// Pizza Köşesi
	{ID: 6, RestaurantID: 2, Name: "Margherita Pizza", Description: "Domates sosu, mozzarella ve taze fesleğenli klasik pizza", Price: price("42.00"), Category: enums.MenuCategoryMain, IsAvailable: true},
	{ID: 7, RestaurantID: 2, Name: "Pepperoni Pizza", Description: "Pepperoni ve eritilmiş peynirli popüler pizza", Price: price("48.00"), Category: enums.MenuCategoryMain, IsAvailable: true},
	{ID: 8, RestaurantID: 2, Name: "Quattro Stagioni", Description: "Dört mevsim malzemeleriyle özel pizza", Price: price("55.00"), Category: enums.MenuCategoryMain, IsAvailable: true},
	{ID: 9, RestaurantID: 2, Name: "Sezar Salatası", Description: "Taze marul, sezar sosu ve çıtır krutonlarla", Price: price("28.00"), Category: enums.MenuCategorySalad, IsAvailable: true},
	{ID: 10, RestaurantID: 2, Name: "Tiramisu", Description: "Geleneksel İtalyan kahveli tatlı", Price: price("32.00"), Category: enums.MenuCategoryDessert, IsAvailable: true},
	// Burger Sarayı
	{ID: 11, RestaurantID: 1, Name: "Cheeseburger", Description: "Klasik cheeseburger, çıtır patates kızartması ile", Price: price("38.00"), Category: enums.MenuCategoryMain, IsAvailable: true},
	{ID: 12, RestaurantID: 1, Name: "Bacon Burger", Description: "Çıtır bacon ve peynirli özel burger", Price: price("45.00"), Category: enums.MenuCategoryMain, IsAvailable: true},
	{ID: 13, RestaurantID: 1, Name: "Tavuk Kanatları", Description: "Baharatlı soslu çıtır tavuk kanatları", Price: price("32.00"), Category: enums.MenuCategoryMain, IsAvailable: true},
	{ID: 14, RestaurantID: 1, Name: "Soğan Halkaları", Description: "Altın sarısı çıtır soğan halkaları", Price: price("22.00"), Category: enums.MenuCategorySalad, IsAvailable: true},
	// Sushi Evi
	{ID: 15, RestaurantID: 3, Name: "California Roll", Description: "Avokado, salatalık ve yengeç çubuğu ile hazırlanmış sushi", Price: price("45.00"), Category: enums.MenuCategoryMain, IsAvailable: true},
	{ID: 16, RestaurantID: 3, Name: "Salmon Teriyaki", Description: "Teriyaki soslu ızgara somon balığı", Price: price("65.00"), Category: enums.MenuCategoryMain, IsAvailable: true},
	{ID: 17, RestaurantID: 3, Name: "Miso Çorbası", Description: "Geleneksel Japon miso çorbası", Price: price("15.00"), Category: enums.MenuCategorySalad, IsAvailable: true},
	{ID: 18, RestaurantID: 3, Name: "Mochi Dondurma", Description: "Renkli mochi dondurma topları", Price: price("28.00"), Category: enums.MenuCategoryDessert, IsAvailable: true},
	// Taco Festivali
	{ID: 19, RestaurantID: 4, Name: "Etli Taco", Description: "Baharatlı et, marul, domates ve peynirli taco", Price: price("35.00"), Category: enums.MenuCategoryMain, IsAvailable: true},
	{ID: 20, RestaurantID: 4, Name: "Tavuklu Quesadilla", Description: "Tavuk parçaları ve peynirli quesadilla", Price: price("32.00"), Category: enums.MenuCategoryMain, IsAvailable: true},
	{ID: 21, RestaurantID: 4, Name: "Guacamole", Description: "Taze avokado ezmesi ve tortilla cipsleri", Price: price("18.00"), Category: enums.MenuCategorySalad, IsAvailable: true},
	{ID: 22, RestaurantID: 4, Name: "Churros", Description: "Tarçın şekerli geleneksel İspanyol tatlısı", Price: price("25.00"), Category: enums.MenuCategoryDessert, IsAvailable: true},
	// Köri Ekspres
	{ID: 23, RestaurantID: 6, Name: "Tavuklu Biryani", Description: "Baharatlı tavuk ve basmati pilavı", Price: price("42.00"), Category: enums.MenuCategoryMain, IsAvailable: true},
	{ID: 24, RestaurantID: 6, Name: "Butter Chicken", Description: "Kremalı tereyağlı tavuk köri", Price: price("38.00"), Category: enums.MenuCategoryMain, IsAvailable: true},
	{ID: 25, RestaurantID: 6, Name: "Samosa", Description: "Baharatlı patates dolgulu çıtır börek", Price: price("15.00"), Category: enums.MenuCategorySalad, IsAvailable: true},
	{ID: 26, RestaurantID: 6, Name: "Gulab Jamun", Description: "Şerbetli geleneksel Hint tatlısı", Price: price("22.00"), Category: enums.MenuCategoryDessert, IsAvailable: true},
}

var locations = []models.RestaurantLocation{
	{RestaurantID: 1, Latitude: 40.9903, Longitude: 29.0275, Address: "Bağdat Cad. No:123, Kadıköy", District: "Kadıköy", City: "İstanbul"},
	{RestaurantID: 2, Latitude: 41.0367, Longitude: 28.9840, Address: "İstiklal Cad. No:456, Beyoğlu", District: "Beyoğlu", City: "İstanbul"},
	{RestaurantID: 3, Latitude: 41.0484, Longitude: 29.0141, Address: "Nişantaşı Mah. Teşvikiye Sok. No:789", District: "Şişli", City: "İstanbul"},
	{RestaurantID: 4, Latitude: 41.0766, Longitude: 29.0634, Address: "Etiler Mah. Nispetiye Cad. No:321", District: "Beşiktaş", City: "İstanbul"},
	{RestaurantID: 5, Latitude: 41.0183, Longitude: 28.9639, Address: "Eminönü Mah. Tarihi Çarşı No:654", District: "Fatih", City: "İstanbul"},
	{RestaurantID: 6, Latitude: 41.0344, Longitude: 28.9844, Address: "Cihangir Mah. Akarsu Cad. No:147", District: "Beyoğlu", City: "İstanbul"},
}

var reviews = []models.Review{
	{ID: 1, RestaurantID: 1, UserID: "user-1", UserName: "Ahmet Yılmaz", Rating: 5, Comment: "Muhteşem burger! Özellikle köftesi çok lezzetli ve taze malzemeler kullanılmış. Hızlı teslimat da cabası.", Helpful: 12, CreatedAt: day("2024-01-15")},
	{ID: 2, RestaurantID: 1, UserID: "user-2", UserName: "Ayşe Demir", Rating: 4, Comment: "Burgerler güzel ama biraz pahalı. Yine de kaliteli malzemeler kullanılmış, tavsiye ederim.", Helpful: 8, CreatedAt: day("2024-01-10")},
	{ID: 3, RestaurantID: 1, UserID: "user-3", UserName: "Mehmet Kaya", Rating: 5, Comment: "Harika! Sosları özellikle çok beğendim. Patatesler de süper kıtır.", Helpful: 15, CreatedAt: day("2024-01-08")},
	{ID: 4, RestaurantID: 2, UserID: "user-4", UserName: "Fatma Özkan", Rating: 5, Comment: "Margherita pizza mükemmeldi! Hamuru ince ve lezzetli. Kesinlikle tekrar sipariş vereceğim.", Helpful: 10, CreatedAt: day("2024-01-12")},
	{ID: 5, RestaurantID: 2, UserID: "user-5", UserName: "Can Arslan", Rating: 4, Comment: "Pizzalar güzel ama biraz geç geldi. Lezzet konusunda şikayet yok.", Helpful: 6, CreatedAt: day("2024-01-05")},
	{ID: 6, RestaurantID: 3, UserID: "user-6", UserName: "Kemal Şen", Rating: 5, Comment: "Sushi kalitesi gerçekten çok yüksek. Balık çok taze ve sunum harika. Fiyat da makul.", Helpful: 20, CreatedAt: day("2024-01-14")},
	{ID: 7, RestaurantID: 3, UserID: "user-7", UserName: "Zeynep Aktaş", Rating: 5, Comment: "Mükemmel! Özellikle salmon roll çok lezzetliydi. Hızlı teslimat da ayrı bir artı.", Helpful: 18, CreatedAt: day("2024-01-09")},
	{ID: 8, RestaurantID: 4, UserID: "user-8", UserName: "Oğuz Yıldırım", Rating: 4, Comment: "Tacolar lezzetli ama biraz daha baharatlı olabilirdi. Genel olarak memnunum.", Helpful: 7, CreatedAt: day("2024-01-11")},
	{ID: 9, RestaurantID: 4, UserID: "user-9", UserName: "Selin Koç", Rating: 5, Comment: "Harika! Özellikle beef taco çok güzeldi. Sosları da mükemmel.", Helpful: 11, CreatedAt: day("2024-01-06")},
	{ID: 10, RestaurantID: 5, UserID: "user-10", UserName: "Hasan Çelik", Rating: 5, Comment: "Adana kebap mükemmeldi! Çok lezzetli ve doyurucu. Fiyat performans olarak da çok iyi.", Helpful: 16, CreatedAt: day("2024-01-13")},
	{ID: 11, RestaurantID: 5, UserID: "user-11", UserName: "Gülsüm Avcı", Rating: 4, Comment: "Kebaplar güzel ama pilav biraz kuru geldi. Yine de tavsiye ederim.", Helpful: 9, CreatedAt: day("2024-01-07")},
	{ID: 12, RestaurantID: 6, UserID: "user-12", UserName: "Emre Kılıç", Rating: 5, Comment: "Chicken curry harika! Baharatlar tam kıvamında. Naan ekmeği de çok lezzetli.", Helpful: 14, CreatedAt: day("2024-01-10")},
	{ID: 13, RestaurantID: 6, UserID: "user-13", UserName: "Aylin Şahin", Rating: 4, Comment: "Lezzetli ama biraz geç geldi. Yemek kalitesi gayet iyi.", Helpful: 5, CreatedAt: day("2024-01-04")},
}
