// internal/recommendations/catalog.go

package recommendations

// brandRecommendations are the suggestions served to brand accounts.
func brandRecommendations() []Recommendation {
	return []Recommendation{
		{
			ID:              "rec-1",
			Type:            TypeProfileOptimization,
			Title:           "Add Financial Performance Metrics",
			Description:     "Profiles with detailed financial data receive 34% more investor interest. Consider adding revenue figures and growth percentages.",
			Confidence:      92,
			Impact:          ImpactHigh,
			Category:        "Profile",
			Action:          "Add metrics to profile",
			Reasoning:       "Analysis shows investors prioritize financial transparency. Your profile lacks specific revenue data.",
			SuggestedFields: []string{"annualRevenue", "growthPercentage", "profitMargins"},
		},
		{
			ID:          "rec-2",
			Type:        TypeMatchingStrategy,
			Title:       "Target Multi-Unit Investors",
			Description: "Based on your franchise model, focus on investors with multi-unit development experience. They show 67% higher conversion rates for your industry.",
			Confidence:  87,
			Impact:      ImpactHigh,
			Category:    "Strategy",
			Reasoning:   "Your business model aligns with multi-unit development. Historical data shows better match outcomes.",
			TargetCriteria: map[string]interface{}{
				"experience":          "multi-unit",
				"minBudget":           400000,
				"preferredIndustries": []string{"Food & Beverage", "Retail"},
			},
		},
		{
			ID:          "rec-3",
			Type:        TypeConversationStarter,
			Title:       "Personalized Opening Messages",
			Description: "Use location-specific data in your initial messages. Mentioning local market insights increases response rates by 45%.",
			Confidence:  78,
			Impact:      ImpactMedium,
			Category:    "Communication",
			Data: map[string]interface{}{
				"suggestedMessage": "Hi! I noticed you're interested in the Seattle market. Our brand has seen 23% growth in the Pacific Northwest this year, with particularly strong performance in urban areas like yours. I'd love to discuss how our proven model could work in your target locations.",
				"personalizations": []string{"location", "market_trends", "demographic_data"},
			},
		},
		{
			ID:          "rec-4",
			Type:        TypeMarketInsight,
			Title:       "Emerging Market Opportunity",
			Description: "AI analysis shows increased investor interest in your industry in Texas and Florida. Consider expanding your target regions.",
			Confidence:  85,
			Impact:      ImpactMedium,
			Category:    "Market Intelligence",
			Data: map[string]interface{}{
				"recommendedMarkets": []string{"Austin, TX", "Miami, FL", "Tampa, FL", "Dallas, TX"},
				"growthProjections":  map[string]float64{"texas": 0.31, "florida": 0.28},
				"competitionLevel":   "moderate",
			},
		},
	}
}

// investorRecommendations are the suggestions served to investor accounts.
func investorRecommendations() []Recommendation {
	return []Recommendation{
		{
			ID:              "rec-5",
			Type:            TypeProfileOptimization,
			Title:           "Highlight Industry Experience",
			Description:     "Investors with specific industry experience mentioned get 41% more brand matches. Add your restaurant/retail background details.",
			Confidence:      89,
			Impact:          ImpactHigh,
			Category:        "Profile",
			Action:          "Update experience section",
			Reasoning:       "Your profile shows general business experience but lacks industry specifics. Brands prefer experienced operators.",
			SuggestedFields: []string{"restaurant_operations", "retail_management", "multi_unit_oversight"},
			Data: map[string]interface{}{
				"experienceAreas": []string{"restaurant_operations", "retail_management", "multi_unit_oversight"},
				"successMetrics":  []string{"stores_operated", "revenue_generated", "team_size_managed"},
			},
		},
		{
			ID:          "rec-6",
			Type:        TypeMatchingStrategy,
			Title:       "Adjust Budget Range Display",
			Description: "Brands in your target range prefer investors showing $400K-600K budgets. Consider updating your investment range visibility.",
			Confidence:  82,
			Impact:      ImpactHigh,
			Category:    "Strategy",
			Reasoning:   "Analysis of successful matches shows optimal budget alignment. Your current range may be limiting visibility.",
			Data: map[string]interface{}{
				"recommendedRange": map[string]int{"min": 400000, "max": 600000, "sweetSpot": 500000},
			},
		},
		{
			ID:          "rec-7",
			Type:        TypeConversationStarter,
			Title:       "Lead with Market Knowledge",
			Description: "Start conversations by discussing local market conditions. Brands respond 52% more often to location-aware messages.",
			Confidence:  76,
			Impact:      ImpactMedium,
			Category:    "Communication",
			Data: map[string]interface{}{
				"suggestedMessage": "Hello! I'm very interested in your franchise concept. I've been researching the Chicago market and see strong potential for your business model here. The demographics align well with your target customer base, and there's limited direct competition in my target areas. I'd love to discuss how we could work together to establish a successful presence.",
				"marketInsights": map[string]string{
					"demographics":     "favorable",
					"competition":      "limited",
					"growth_potential": "high",
				},
			},
		},
		{
			ID:          "rec-8",
			Type:        TypeMarketInsight,
			Title:       "Timing Optimization",
			Description: "Brands are most active on the platform Tuesday-Thursday, 2-5 PM EST. Schedule your swiping sessions accordingly for better visibility.",
			Confidence:  71,
			Impact:      ImpactLow,
			Category:    "Timing",
			Data: map[string]interface{}{
				"optimalTimes": []map[string]string{
					{"day": "Tuesday", "hours": "14:00-17:00"},
					{"day": "Wednesday", "hours": "14:00-17:00"},
					{"day": "Thursday", "hours": "14:00-17:00"},
				},
				"activityLevels": map[string]float64{
					"tuesday":   0.85,
					"wednesday": 0.92,
					"thursday":  0.88,
				},
			},
		},
	}
}
