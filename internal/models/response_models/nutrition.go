package response_models

type NutritionFoodItem struct {
	Name     string  `json:"name"`
	Quantity string  `json:"quantity"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}

// NutritionAnalysis is the shape the analysis prompt asks the model for.
// Replies are decoded into it without further checks.
type NutritionAnalysis struct {
	FoodItems     []NutritionFoodItem `json:"foodItems"`
	TotalCalories float64             `json:"totalCalories"`
	TotalProtein  float64             `json:"totalProtein"`
	TotalCarbs    float64             `json:"totalCarbs"`
	TotalFat      float64             `json:"totalFat"`
	Summary       string              `json:"summary"`
	Confidence    float64             `json:"confidence"`
}
