package domain

type FoodItem struct {
	ID    string  `json:"_id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

// DefaultMenu is the fixed catalog written by a seed.
var DefaultMenu = []FoodItem{
	{Name: "Pizza", Price: 12, Image: "https://i.imgur.com/eTmWoAN.png"},
	{Name: "Burger", Price: 8, Image: "https://i.imgur.com/0umadnY.jpg"},
	{Name: "Sushi", Price: 15, Image: "https://i.imgur.com/UPrs1EW.jpg"},
	{Name: "Pasta", Price: 10, Image: "https://i.imgur.com/MABUbpDl.jpg"},
	{Name: "Salad", Price: 7, Image: "https://i.imgur.com/DupGBz5.jpg"},
}
