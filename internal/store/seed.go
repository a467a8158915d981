package store

// Seed loads the demo catalog: five categories, five sellers with fixed API
// credentials, ten users, a representative product set across every category
// and enough reviews to exercise the rating aggregates. Ids are deterministic
// because the store assigns them sequentially in insertion order.
func Seed(s *Store) {
	categories := []Category{
		{Name: "Electronics", Description: "Phones, computers, tablets, headphones and other electronic devices", Icon: "📱", ImageURL: "https://images.unsplash.com/photo-1498049794561-7780e7231661?w=400"},
		{Name: "Fashion", Description: "Men's, women's and children's clothing, shoes, bags and accessories", Icon: "👔", ImageURL: "https://images.unsplash.com/photo-1445205170230-053b83016050?w=400"},
		{Name: "Home & Living", Description: "Furniture, decoration, kitchen supplies and home textiles", Icon: "🏠", ImageURL: "https://images.unsplash.com/photo-1484101403633-562f891dc89a?w=400"},
		{Name: "Sports & Outdoor", Description: "Sports equipment, outdoor clothing, fitness products and bicycles", Icon: "⚽", ImageURL: "https://images.unsplash.com/photo-1517836357463-d25dfeac3438?w=400"},
		{Name: "Books & Hobbies", Description: "Books, e-books, musical instruments and hobby supplies", Icon: "📚", ImageURL: "https://images.unsplash.com/photo-1512820790803-83ca734da794?w=400"},
	}
	for _, c := range categories {
		s.CreateCategory(c)
	}

	sellers := []Seller{
		{Name: "TechStore", Description: "Your trusted technology store. Leading in electronics for 10 years.", ContactEmail: "info@techstore.com", ContactPhone: "+1 555-0101", IsVerified: true, AverageRating: 4.7},
		{Name: "FashionHub", Description: "Online store offering the latest fashion trends at affordable prices.", ContactEmail: "info@fashionhub.com", ContactPhone: "+1 555-0102", IsVerified: true, AverageRating: 4.5},
		{Name: "HomeDecor", Description: "Beautify your home! Decoration and furniture specialist.", ContactEmail: "info@homedecor.com", ContactPhone: "+1 555-0103", IsVerified: true, AverageRating: 4.3},
		{Name: "SportZone", Description: "Everything for sports enthusiasts! From fitness to outdoor equipment.", ContactEmail: "info@sportzone.com", ContactPhone: "+1 555-0104", IsVerified: true, AverageRating: 4.6},
		{Name: "BookWorld", Description: "Paradise for book lovers! Over 100,000 book varieties.", ContactEmail: "info@bookworld.com", ContactPhone: "+1 555-0105", IsVerified: true, AverageRating: 4.8},
	}
	apiKeys := []string{"seller_key_001", "seller_key_002", "seller_key_003", "seller_key_004", "seller_key_005"}
	for i, sl := range sellers {
		s.CreateSeller(sl, apiKeys[i])
	}

	users := []User{
		{Name: "John Smith", Email: "john@example.com"},
		{Name: "Emily Johnson", Email: "emily@example.com"},
		{Name: "Michael Brown", Email: "michael@example.com"},
		{Name: "Sarah Davis", Email: "sarah@example.com"},
		{Name: "David Wilson", Email: "david@example.com"},
		{Name: "Jessica Martinez", Email: "jessica@example.com"},
		{Name: "Chris Anderson", Email: "chris@example.com"},
		{Name: "Amanda Taylor", Email: "amanda@example.com"},
		{Name: "James Thomas", Email: "james@example.com"},
		{Name: "Ashley Garcia", Email: "ashley@example.com"},
	}
	for _, u := range users {
		s.CreateUser(u)
	}

	products := []Product{
		{
			Name:               "Apple iPhone 15 Pro 256GB",
			Description:        "Apple's newest flagship phone. Unmatched performance with the A17 Pro chip, professional photos with the 48MP main camera, premium look with titanium design.",
			CategoryID:         1,
			SellerID:           1,
			Price:              1199.99,
			DiscountPercentage: 8,
			StockStatus:        StockInStock,
			Features:           map[string]string{"Display": "6.1 inch Super Retina XDR OLED", "Processor": "A17 Pro", "RAM": "8GB", "Storage": "256GB"},
			Images:             []string{"https://images.unsplash.com/photo-1695048133142-1a20484d2569?w=400"},
		},
		{
			Name:               "Samsung Galaxy S24 Ultra 512GB",
			Description:        "Samsung's most powerful phone. Snapdragon 8 Gen 3 processor, 200MP camera system, Galaxy AI features and the built-in S Pen.",
			CategoryID:         1,
			SellerID:           1,
			Price:              1399.99,
			DiscountPercentage: 12,
			StockStatus:        StockInStock,
			Features:           map[string]string{"Display": "6.8 inch Dynamic AMOLED 2X", "Processor": "Snapdragon 8 Gen 3", "RAM": "12GB"},
			Images:             []string{"https://images.unsplash.com/photo-1610945265064-0e34e5519bbf?w=400"},
		},
		{
			Name:               "MacBook Pro 14\" M3 Pro",
			Description:        "Professional performance with the Apple M3 Pro chip. 14.2 inch Liquid Retina XDR display, 18 hours of battery life.",
			CategoryID:         1,
			SellerID:           1,
			Price:              2499.99,
			DiscountPercentage: 5,
			StockStatus:        StockLowStock,
			Features:           map[string]string{"Display": "14.2 inch Liquid Retina XDR", "Processor": "Apple M3 Pro", "RAM": "18GB"},
		},
		{
			Name:               "Sony WH-1000XM5 Headphones",
			Description:        "Industry-leading noise cancelling, 30 hours of battery, crystal clear calls. The reference wireless headphone.",
			CategoryID:         1,
			SellerID:           1,
			Price:              399.99,
			DiscountPercentage: 20,
			StockStatus:        StockInStock,
			Features:           map[string]string{"Battery": "30 hours", "ANC": "yes", "Weight": "250g"},
		},
		{
			Name:               "Kindle Paperwhite 11th Gen",
			Description:        "Waterproof e-reader with a 6.8 inch glare-free display, warm light and ten weeks of battery life.",
			CategoryID:         5,
			SellerID:           5,
			Price:              149.99,
			DiscountPercentage: 10,
			StockStatus:        StockInStock,
			Features:           map[string]string{"Display": "6.8 inch 300 ppi", "Storage": "16GB", "Waterproof": "IPX8"},
		},
		{
			Name:               "Men's Premium Leather Jacket",
			Description:        "Genuine leather jacket with Italian craftsmanship. Timeless design that only gets better with age.",
			CategoryID:         2,
			SellerID:           2,
			Price:              349.99,
			DiscountPercentage: 15,
			StockStatus:        StockInStock,
			Features:           map[string]string{"Material": "Genuine leather", "Lining": "Polyester"},
		},
		{
			Name:               "Nike Air Max 270 Men's",
			Description:        "Iconic lifestyle sneaker with the largest Air unit yet for all-day comfort.",
			CategoryID:         2,
			SellerID:           2,
			Price:              159.99,
			DiscountPercentage: 25,
			StockStatus:        StockInStock,
			Features:           map[string]string{"Upper": "Mesh", "Sole": "Air Max 270 unit"},
		},
		{
			Name:               "Dyson V15 Detect Vacuum",
			Description:        "Laser dust detection, LCD particle count and intelligent suction power. Cordless cleaning without compromise.",
			CategoryID:         3,
			SellerID:           3,
			Price:              749.99,
			DiscountPercentage: 10,
			StockStatus:        StockInStock,
			Features:           map[string]string{"Runtime": "60 min", "Filtration": "HEPA"},
		},
		{
			Name:               "Philips Airfryer XXL",
			Description:        "Oil-free frying for the whole family. Crispy outside, soft inside, dishwasher-safe parts.",
			CategoryID:         3,
			SellerID:           3,
			Price:              299.99,
			DiscountPercentage: 30,
			StockStatus:        StockInStock,
			Features:           map[string]string{"Capacity": "7.3L", "Programs": "5 presets"},
		},
		{
			Name:               "Garmin Fenix 7X Pro Solar",
			Description:        "The outdoor watch without compromises. Solar charging, offline maps, every training metric you can name.",
			CategoryID:         4,
			SellerID:           4,
			Price:              899.99,
			DiscountPercentage: 8,
			StockStatus:        StockInStock,
			Features:           map[string]string{"Battery": "37 days", "GPS": "Multi-band", "Display": "1.4 inch"},
		},
		{
			Name:               "Decathlon Trekking Tent 3-Person",
			Description:        "Four-season trekking tent. Sets up in five minutes, stays dry in heavy rain, light enough for a backpack.",
			CategoryID:         4,
			SellerID:           4,
			Price:              189.99,
			DiscountPercentage: 18,
			StockStatus:        StockPreOrder,
			Features:           map[string]string{"Weight": "4.2kg", "Season": "4-season"},
		},
		{
			Name:               "Atomic Habits - James Clear",
			Description:        "The practical guide to building good habits and breaking bad ones, one percent at a time.",
			CategoryID:         5,
			SellerID:           5,
			Price:              24.99,
			DiscountPercentage: 0,
			StockStatus:        StockInStock,
			Features:           map[string]string{"Pages": "320", "Language": "English"},
		},
		{
			Name:               "LEGO Technic Ferrari 488 GTE",
			Description:        "3841-piece licensed display model with a working V8 engine and functional steering.",
			CategoryID:         5,
			SellerID:           5,
			Price:              189.99,
			DiscountPercentage: 6,
			StockStatus:        StockOutOfStock,
			Features:           map[string]string{"Pieces": "3841", "Age": "18+"},
		},
	}
	for _, p := range products {
		s.CreateProduct(p)
	}

	reviews := []Review{
		{ProductID: 1, UserID: 1, Rating: 5, Title: "Amazing phone!", Comment: "The A17 Pro is incredibly fast and the camera is professional level. Battery life is great after two months.", Pros: []string{"Camera quality", "Processor performance"}, Cons: []string{"Price is very high"}},
		{ProductID: 1, UserID: 2, Rating: 5, Title: "Worth every penny", Comment: "Upgraded from an iPhone 12, night and day difference. The USB-C switch makes so much sense.", Pros: []string{"USB-C", "Display quality"}, Cons: []string{"Charger not included"}},
		{ProductID: 1, UserID: 3, Rating: 4, Title: "Very good but not perfect", Comment: "Overall satisfied but expected a bit more innovation at this price.", Pros: []string{"Fast performance"}, Cons: []string{"Expensive"}},
		{ProductID: 2, UserID: 5, Rating: 5, Title: "Galaxy AI is incredible!", Comment: "The AI features are genuinely useful and the 200MP camera is a detail monster.", Pros: []string{"Galaxy AI", "S Pen"}, Cons: []string{"Price"}},
		{ProductID: 2, UserID: 6, Rating: 4, Title: "Very powerful but...", Comment: "Performance is amazing but there is some heating during heavy use.", Pros: []string{"Display", "Performance"}, Cons: []string{"Heating", "Heavy"}},
		{ProductID: 2, UserID: 7, Rating: 5, Title: "Best Android phone", Comment: "This phone offers the best of everything. The 100x zoom keeps surprising me.", Pros: []string{"Zoom camera", "Battery"}, Cons: []string{"One-handed use difficult"}},
		{ProductID: 3, UserID: 8, Rating: 5, Title: "Perfect for developers", Comment: "Docker, multiple IDEs and simulators all at once with almost no fan noise.", Pros: []string{"Performance", "Silent operation"}, Cons: []string{"Limited ports"}},
		{ProductID: 3, UserID: 9, Rating: 5, Title: "Great for video editing", Comment: "4K editing is butter smooth and the display color accuracy is superb.", Pros: []string{"Video performance", "Display"}, Cons: []string{"No RAM upgrade"}},
		{ProductID: 4, UserID: 1, Rating: 5, Title: "Noise cancelling is amazing!", Comment: "Office, subway, airplane. Perfect silence everywhere and the 30 hour battery is real.", Pros: []string{"ANC", "Battery life"}, Cons: []string{"Ears get warm in summer"}},
		{ProductID: 4, UserID: 2, Rating: 5, Title: "Upgraded from the XM4", Comment: "The XM5's ANC is much better and multipoint now works flawlessly.", Pros: []string{"ANC improvement", "Comfort"}, Cons: []string{"Doesn't fold"}},
		{ProductID: 4, UserID: 3, Rating: 4, Title: "Great but the price...", Comment: "No complaints about sound or ANC, but at this price I expected better accessories.", Pros: []string{"Sound", "Comfort"}, Cons: []string{"Price"}},
		{ProductID: 5, UserID: 4, Rating: 5, Title: "Must-have for bookworms", Comment: "Ten weeks of battery is real, and reading in direct sunlight is amazing.", Pros: []string{"Battery life", "Warm light"}, Cons: []string{"PDFs are awkward"}},
		{ProductID: 5, UserID: 5, Rating: 5, Title: "Reading habit increased", Comment: "My entire library in my pocket, and waterproof for the pool.", Pros: []string{"Lightweight", "Waterproof"}, Cons: []string{"No color content"}},
		{ProductID: 6, UserID: 8, Rating: 5, Title: "Quality is evident", Comment: "Real leather, perfect stitching. Three years in and still like new.", Pros: []string{"Leather quality", "Durability"}, Cons: []string{"Price is high but worth it"}},
		{ProductID: 6, UserID: 9, Rating: 4, Title: "Very stylish", Comment: "Exactly what I expected, just a bit stiff until it breaks in.", Pros: []string{"Design"}, Cons: []string{"Stiff at first"}},
		{ProductID: 7, UserID: 2, Rating: 5, Title: "So comfortable!", Comment: "The most comfortable Air Max ever. Standing all day is no problem.", Pros: []string{"Comfort", "Lightweight"}, Cons: []string{"Hard to clean"}},
		{ProductID: 7, UserID: 3, Rating: 4, Title: "Nice but narrow fit", Comment: "Very stylish but I recommend going half a size up.", Pros: []string{"Look"}, Cons: []string{"Narrow fit"}},
		{ProductID: 8, UserID: 10, Rating: 5, Title: "Laser technology is surprising", Comment: "Turn on the laser in a dark room and prepare to be horrified by the dust.", Pros: []string{"Laser", "Suction power"}, Cons: []string{"Price is very high"}},
		{ProductID: 8, UserID: 1, Rating: 5, Title: "Home cleaning is now fun", Comment: "Expensive, but it completely changed cleaning. The HEPA filter helps my allergies.", Pros: []string{"Cleaning quality", "Allergy friendly"}, Cons: []string{"High price"}},
		{ProductID: 9, UserID: 2, Rating: 5, Title: "Fries never been this good", Comment: "Oil-free frying really works and everything goes in the dishwasher.", Pros: []string{"Taste", "Easy cleaning"}, Cons: []string{"Takes up space"}},
		{ProductID: 9, UserID: 3, Rating: 4, Title: "Ideal for a family", Comment: "The XXL size feeds four easily, though it is a bit noisy.", Pros: []string{"Capacity", "Presets"}, Cons: []string{"Noise"}},
		{ProductID: 10, UserID: 6, Rating: 5, Title: "King of outdoor", Comment: "Bought for mountaineering, the maps and GPS accuracy are excellent.", Pros: []string{"GPS accuracy", "Solar charging"}, Cons: []string{"Can be considered heavy"}},
		{ProductID: 10, UserID: 7, Rating: 5, Title: "Perfect for running", Comment: "Every metric you could want, and charging once every two weeks is enough.", Pros: []string{"Metrics", "Battery life"}, Cons: []string{"Price is very high"}},
		{ProductID: 11, UserID: 8, Rating: 4, Title: "Very good for the price", Comment: "Three nights in heavy rain without a leak. Two people pitch it in five minutes.", Pros: []string{"Waterproof", "Easy setup"}, Cons: []string{"Interior a bit tight"}},
		{ProductID: 12, UserID: 4, Rating: 5, Title: "Changed my life", Comment: "Read it three times in two years, the habit tracking system really works.", Pros: []string{"Practical advice"}, Cons: []string{"Some parts repetitive"}},
		{ProductID: 12, UserID: 5, Rating: 5, Title: "Everyone should read", Comment: "The most concrete personal development book I know. Still applying the 1% rule.", Pros: []string{"Concrete examples"}, Cons: []string{"Some repetition"}},
		{ProductID: 13, UserID: 8, Rating: 5, Title: "Engineering marvel", Comment: "3841 pieces and twelve hours of joy. The V8 actually turns over.", Pros: []string{"Details", "Working mechanics"}, Cons: []string{"Price is very high"}},
	}
	for _, r := range reviews {
		s.CreateReview(r)
	}
}
