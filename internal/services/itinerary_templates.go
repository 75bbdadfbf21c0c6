package services

import "tripgenius/internal/models/db_models"

type dayTemplate struct {
	Theme      string
	Activities []db_models.Activity
}

// Generation is a deterministic rotation over these templates keyed by
// day offset. No external AI is involved.
var dayTemplates = []dayTemplate{
	{
		Theme: "Historic Heart & Cultural Immersion",
		Activities: []db_models.Activity{
			{Time: "9:00 AM", Title: "Historic Cathedral District", Description: "Start your adventure at iconic religious and historic sites. Explore stunning architecture and learn about local history.", Duration: "2 hours", Cost: "$15", Type: db_models.ActivityAttraction, Rating: 4.8},
			{Time: "11:30 AM", Title: "River Walk", Description: "Stroll along historic riverbanks, enjoying street performers and local vendors.", Duration: "1 hour", Cost: "Free", Type: db_models.ActivityGeneric, Rating: 4.5},
			{Time: "12:30 PM", Title: "Local Eatery", Description: "Experience authentic local cuisine at this popular neighborhood spot.", Duration: "1 hour", Cost: "$12", Type: db_models.ActivityRestaurant, Rating: 4.6},
			{Time: "2:00 PM", Title: "Main Museum", Description: "Dive into world-class art and culture. Book timed entry in advance for popular exhibits.", Duration: "3 hours", Cost: "$18", Type: db_models.ActivityAttraction, Rating: 4.7},
			{Time: "6:00 PM", Title: "Sunset Viewpoint", Description: "Golden hour photography at scenic viewpoints. Perfect for memorable photos!", Duration: "1 hour", Cost: "Free", Type: db_models.ActivityGeneric, Rating: 4.9},
		},
	},
	{
		Theme: "Arts & Culture Discovery",
		Activities: []db_models.Activity{
			{Time: "9:00 AM", Title: "Art District", Description: "Explore the artistic heart of the city with galleries and creative spaces.", Duration: "2 hours", Cost: "$8", Type: db_models.ActivityAttraction, Rating: 4.6},
			{Time: "11:30 AM", Title: "Artist Quarter", Description: "Watch local artists at work and browse unique artwork and crafts.", Duration: "1.5 hours", Cost: "$25", Type: db_models.ActivityGeneric, Rating: 4.4},
			{Time: "1:00 PM", Title: "Cultural Bistro", Description: "Hidden gem restaurant loved by locals. Try regional specialties in an authentic setting.", Duration: "1.5 hours", Cost: "$35", Type: db_models.ActivityRestaurant, Rating: 4.7},
			{Time: "3:00 PM", Title: "Creative District", Description: "Explore unique shops and soak in the bohemian atmosphere of the creative quarter.", Duration: "2 hours", Cost: "$10", Type: db_models.ActivityGeneric, Rating: 4.3},
			{Time: "6:00 PM", Title: "Evening Landmark", Description: "Visit iconic landmarks as they light up for the evening. Spectacular views guaranteed!", Duration: "2 hours", Cost: "$30", Type: db_models.ActivityAttraction, Rating: 4.8},
		},
	},
	{
		Theme: "Nature & Adventure",
		Activities: []db_models.Activity{
			{Time: "8:00 AM", Title: "City Park", Description: "Start early at the main city park. Great for morning walks and fresh air.", Duration: "2 hours", Cost: "Free", Type: db_models.ActivityGeneric, Rating: 4.5},
			{Time: "10:30 AM", Title: "Outdoor Market", Description: "Browse local produce and artisan goods at the vibrant morning market.", Duration: "1.5 hours", Cost: "$20", Type: db_models.ActivityGeneric, Rating: 4.3},
			{Time: "12:00 PM", Title: "Garden Café", Description: "Lunch at a charming café with outdoor seating and local specialties.", Duration: "1 hour", Cost: "$22", Type: db_models.ActivityRestaurant, Rating: 4.4},
			{Time: "2:00 PM", Title: "Nature Reserve", Description: "Explore natural areas and hiking trails just outside the city center.", Duration: "3 hours", Cost: "$12", Type: db_models.ActivityGeneric, Rating: 4.6},
			{Time: "6:30 PM", Title: "Waterfront Dining", Description: "End the day with dinner overlooking water views and beautiful scenery.", Duration: "2 hours", Cost: "$45", Type: db_models.ActivityRestaurant, Rating: 4.7},
		},
	},
	{
		Theme: "Local Life & Hidden Gems",
		Activities: []db_models.Activity{
			{Time: "9:30 AM", Title: "Neighborhood Walk", Description: "Explore authentic local neighborhoods away from tourist crowds.", Duration: "2 hours", Cost: "Free", Type: db_models.ActivityGeneric, Rating: 4.4},
			{Time: "11:30 AM", Title: "Local Workshop", Description: "Participate in a traditional craft or cooking workshop with locals.", Duration: "2 hours", Cost: "$40", Type: db_models.ActivityGeneric, Rating: 4.8},
			{Time: "2:00 PM", Title: "Family Restaurant", Description: "Lunch at a family-run restaurant serving traditional recipes passed down generations.", Duration: "1.5 hours", Cost: "$28", Type: db_models.ActivityRestaurant, Rating: 4.6},
			{Time: "4:00 PM", Title: "Community Center", Description: "Visit local community spaces and learn about daily life and culture.", Duration: "1.5 hours", Cost: "$5", Type: db_models.ActivityGeneric, Rating: 4.2},
			{Time: "7:00 PM", Title: "Night Market", Description: "Experience the vibrant evening atmosphere at local night markets.", Duration: "2 hours", Cost: "$25", Type: db_models.ActivityGeneric, Rating: 4.5},
		},
	},
	{
		Theme: "Shopping & Entertainment",
		Activities: []db_models.Activity{
			{Time: "10:00 AM", Title: "Main Shopping District", Description: "Browse the primary shopping areas with both local and international brands.", Duration: "2.5 hours", Cost: "$50", Type: db_models.ActivityGeneric, Rating: 4.3},
			{Time: "12:30 PM", Title: "Food Court Favorites", Description: "Sample diverse local foods at the popular food court or market hall.", Duration: "1 hour", Cost: "$18", Type: db_models.ActivityRestaurant, Rating: 4.4},
			{Time: "2:30 PM", Title: "Entertainment Complex", Description: "Visit entertainment venues, arcades, or cultural centers for afternoon fun.", Duration: "2 hours", Cost: "$35", Type: db_models.ActivityGeneric, Rating: 4.5},
			{Time: "5:00 PM", Title: "Rooftop Bar", Description: "Enjoy sunset drinks with panoramic city views from a popular rooftop venue.", Duration: "2 hours", Cost: "$40", Type: db_models.ActivityRestaurant, Rating: 4.6},
			{Time: "8:00 PM", Title: "Evening Show", Description: "Experience local entertainment, live music, or cultural performances.", Duration: "2 hours", Cost: "$55", Type: db_models.ActivityGeneric, Rating: 4.7},
		},
	},
}
