package catalog

// Seed data standing in for a live places API. Slice order inside each
// category is load-bearing: activity matching scans places in this order
// and stops at the first name hit.

func coord(v float64) *float64 { return &v }

var destinationKeys = []string{
	"Paris, France",
	"Tokyo, Japan",
}

var destinations = map[string]map[string][]Place{
	"Paris, France": {
		CategoryRestaurant: {
			{ID: "paris_le_procope", Name: "Le Procope", Category: "Restaurant", Description: "Historic French restaurant", Lat: coord(48.853), Lng: coord(2.3385), ImageURL: "https://placehold.co/300x200.png"},
			{ID: "paris_bouillon_chartier", Name: "Bouillon Chartier", Category: "Restaurant", Description: "Traditional, budget-friendly", Lat: coord(48.872), Lng: coord(2.343), ImageURL: "https://placehold.co/300x200.png"},
			{ID: "paris_le_consulat", Name: "Le Consulat", Category: "Restaurant", Description: "Charming cafe in Montmartre", Lat: coord(48.8867), Lng: coord(2.3386), ImageURL: "https://placehold.co/300x200.png"},
		},
		CategoryTouristAttraction: {
			{ID: "paris_eiffel_tower", Name: "Eiffel Tower", Category: "Landmark", Description: "Iconic iron lattice tower", Lat: coord(48.8584), Lng: coord(2.2945), ImageURL: "https://placehold.co/300x200.png"},
			{ID: "paris_louvre_museum", Name: "Louvre Museum", Category: "Museum", Description: "World's largest art museum", Lat: coord(48.8606), Lng: coord(2.3376), ImageURL: "https://placehold.co/300x200.png"},
			{ID: "paris_notre_dame", Name: "Cathédrale Notre-Dame de Paris", Category: "Cathedral", Description: "Medieval Catholic cathedral", Lat: coord(48.8530), Lng: coord(2.3499), ImageURL: "https://placehold.co/300x200.png"},
		},
		CategoryCafe: {
			{ID: "paris_cafe_de_flore", Name: "Café de Flore", Category: "Cafe", Description: "Famous literary café", Lat: coord(48.854), Lng: coord(2.3325), ImageURL: "https://placehold.co/300x200.png"},
			{ID: "paris_les_deux_magots", Name: "Les Deux Magots", Category: "Cafe", Description: "Another historic literary café", Lat: coord(48.8539), Lng: coord(2.3329), ImageURL: "https://placehold.co/300x200.png"},
		},
	},
	"Tokyo, Japan": {
		CategoryRestaurant: {
			{ID: "tokyo_sukiyabashi_jiro", Name: "Sukiyabashi Jiro", Category: "Restaurant", Description: "Renowned sushi restaurant", Lat: coord(35.6719), Lng: coord(139.7643), ImageURL: "https://placehold.co/300x200.png"},
			{ID: "tokyo_ichiran_shibuya", Name: "Ichiran Ramen Shibuya", Category: "Restaurant", Description: "Popular tonkotsu ramen", Lat: coord(35.6595), Lng: coord(139.7013), ImageURL: "https://placehold.co/300x200.png"},
		},
		CategoryTouristAttraction: {
			{ID: "tokyo_senso_ji", Name: "Senso-ji Temple", Category: "Temple", Description: "Ancient Buddhist temple", Lat: coord(35.7148), Lng: coord(139.7967), ImageURL: "https://placehold.co/300x200.png"},
			{ID: "tokyo_skytree", Name: "Tokyo Skytree", Category: "Landmark", Description: "Broadcasting and observation tower", Lat: coord(35.7101), Lng: coord(139.8107), ImageURL: "https://placehold.co/300x200.png"},
			{ID: "tokyo_shibuya_crossing", Name: "Shibuya Crossing", Category: "Landmark", Description: "Famous scramble crossing", Lat: coord(35.6595), Lng: coord(139.7006), ImageURL: "https://placehold.co/300x200.png"},
		},
		CategoryCafe: {
			{ID: "tokyo_blue_bottle_kiyosumi", Name: "Blue Bottle Coffee - Kiyosumi Shirakawa", Category: "Cafe", Description: "Specialty coffee shop", Lat: coord(35.682), Lng: coord(139.798), ImageURL: "https://placehold.co/300x200.png"},
		},
	},
}
