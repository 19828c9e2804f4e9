package catalog

// SeedProducts returns the default catalog used when the products file is
// missing or unreadable: three products per category.
func SeedProducts() []Product {
	return []Product{
		{
			ID:        "ts-001",
			Category:  "T-Shirts",
			Name:      "Raising Grandkids Is a Superpower",
			Price:     24.99,
			ShortDesc: "Bold, uplifting tee for grandparents raising grandchildren.",
			Details:   "Soft cotton blend. Unisex fit. Great for everyday wear and school events.",
			Variants:  []string{"S", "M", "L", "XL", "2XL"},
			Active:    true,
		},
		{
			ID:        "ts-002",
			Category:  "T-Shirts",
			Name:      "Grandparent Assist Advocate",
			Price:     22.99,
			ShortDesc: "Mission-driven tee for supporters and volunteers.",
			Details:   "Clean logo-style design. Perfect for fundraisers, outreach events, and community days.",
			Variants:  []string{"S", "M", "L", "XL", "2XL"},
			Active:    true,
		},
		{
			ID:        "ts-003",
			Category:  "T-Shirts",
			Name:      "Doing Parenting… Again ❤️",
			Price:     24.99,
			ShortDesc: "Lighthearted, relatable tee with a warm message.",
			Details:   "Comfortable everyday tee. Popular gift item.",
			Variants:  []string{"S", "M", "L", "XL", "2XL"},
			Active:    true,
		},
		{
			ID:        "cb-001",
			Category:  "Coloring Books",
			Name:      "Grandparent & Me: Coloring Our Story",
			Price:     12.99,
			ShortDesc: "Bonding coloring book for grandparents + grandchildren (ages 4–10).",
			Details:   "Family scenes, shared activities, and simple prompts to color together.",
			Variants:  []string{"Paperback"},
			Active:    true,
		},
		{
			ID:        "cb-002",
			Category:  "Coloring Books",
			Name:      "Calm & Care: Coloring Book for Grandparents",
			Price:     14.99,
			ShortDesc: "Stress-relief coloring with gentle affirmations.",
			Details:   "Mandalas + calming designs to support caregiver self-care and decompression.",
			Variants:  []string{"Paperback"},
			Active:    true,
		},
		{
			ID:        "cb-003",
			Category:  "Coloring Books",
			Name:      "My Grandparent Is My Hero",
			Price:     12.99,
			ShortDesc: "Hero-themed coloring pages that celebrate grandparents.",
			Details:   "Confidence-building pages for kids with uplifting messages and fun scenes.",
			Variants:  []string{"Paperback"},
			Active:    true,
		},
		{
			ID:        "cal-001",
			Category:  "Calendar",
			Name:      "Grandparent Assist Family Planner Calendar",
			Price:     16.99,
			ShortDesc: "Monthly planner for schedules, appointments, and school notes.",
			Details:   "Large writing boxes, reminders, and planning prompts for busy households.",
			Variants:  []string{"Wall", "Desk"},
			Active:    true,
		},
		{
			ID:        "cal-002",
			Category:  "Calendar",
			Name:      "Inspirational Quotes for Grandparents Calendar",
			Price:     14.99,
			ShortDesc: "Monthly encouragement + affirmations for caregivers.",
			Details:   "Uplifting quotes with soft visuals—ideal as a gift.",
			Variants:  []string{"Wall"},
			Active:    true,
		},
		{
			ID:        "cal-003",
			Category:  "Calendar",
			Name:      "Grandparent Assist Awareness Calendar",
			Price:     18.99,
			ShortDesc: "Advocacy calendar with awareness dates and bite-size education.",
			Details:   "Perfect for partners and supporters to learn and share.",
			Variants:  []string{"Wall"},
			Active:    true,
		},
		{
			ID:        "bag-001",
			Category:  "Bags",
			Name:      "Raising Grandkids Takes Heart Tote Bag",
			Price:     17.99,
			ShortDesc: "Durable tote for school runs, groceries, and everyday life.",
			Details:   "Canvas tote. Comfortable handles. Great visibility for the mission.",
			Variants:  []string{"Natural", "Black"},
			Active:    true,
		},
		{
			ID:        "bag-002",
			Category:  "Bags",
			Name:      "Grandparent Assist Resource Bag",
			Price:     19.99,
			ShortDesc: "Organize documents, folders, and program materials.",
			Details:   "Roomy interior—ideal for intake kits and school paperwork.",
			Variants:  []string{"Natural"},
			Active:    true,
		},
		{
			ID:        "bag-003",
			Category:  "Bags",
			Name:      "Proud Grandparent Advocate Drawstring Bag",
			Price:     12.99,
			ShortDesc: "Lightweight bag for events and community days.",
			Details:   "Easy-carry drawstring bag—perfect for volunteers and giveaways.",
			Variants:  []string{"Black", "Navy"},
			Active:    true,
		},
		{
			ID:        "mug-001",
			Category:  "Mugs",
			Name:      "One More Coffee, One More School Day",
			Price:     13.99,
			ShortDesc: "Funny, relatable mug for busy mornings.",
			Details:   "11oz ceramic mug. Great gift item.",
			Variants:  []string{"11oz"},
			Active:    true,
		},
		{
			ID:        "mug-002",
			Category:  "Mugs",
			Name:      "Stronger Than You Know",
			Price:     13.99,
			ShortDesc: "Encouraging message mug for everyday support.",
			Details:   "11oz ceramic mug. A daily reminder for caregivers.",
			Variants:  []string{"11oz"},
			Active:    true,
		},
		{
			ID:        "mug-003",
			Category:  "Mugs",
			Name:      "Raising Grandkids With Love",
			Price:     13.99,
			ShortDesc: "Warm, heartfelt mug—perfect for donors and families.",
			Details:   "11oz ceramic mug. Cozy and mission-aligned.",
			Variants:  []string{"11oz"},
			Active:    true,
		},
	}
}
