// internal/analytics/dataset.go

package analytics

import "time"

// baselineReport is the 30-day reference dataset the date-range
// multiplier scales. Volume figures scale with the range; rates and
// averages do not.
func baselineReport() Report {
	return Report{
		Overview: Overview{
			TotalUsers:       2847,
			TotalBrands:      1023,
			TotalInvestors:   1824,
			ActiveMatches:    456,
			TotalMatches:     3672,
			SuccessfulDeals:  89,
			MonthlyGrowth:    23.5,
			RevenueThisMonth: 124500,
		},
		UserActivity: UserActivity{
			DailyActiveUsers:   1245,
			WeeklyActiveUsers:  2156,
			MonthlyActiveUsers: 2847,
			AvgSessionTime:     18.5,
			SwipesPerSession:   12.3,
			MessagesSent:       8934,
			ProfileViews:       15672,
		},
		MatchingStats: MatchingStats{
			MatchRate:          34.6,
			ChatInitiationRate: 78.2,
			DealClosureRate:    12.4,
			AvgTimeToMatch:     3.2,
			TopIndustries: []IndustryShare{
				{Name: "Food & Beverage", Percentage: 28.5, Users: 812},
				{Name: "Retail", Percentage: 22.1, Users: 629},
				{Name: "Health & Fitness", Percentage: 18.3, Users: 521},
				{Name: "Business Services", Percentage: 15.7, Users: 447},
				{Name: "Technology", Percentage: 15.4, Users: 438},
			},
		},
		RecentActivity: []ActivityItem{
			{
				ID:          "1",
				Type:        "match",
				Description: "Sarah Johnson (QuickBite) matched with David Park (Park Investment)",
				Timestamp:   time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC),
				Status:      "success",
				Details: map[string]interface{}{
					"brandName":    "QuickBite Burgers",
					"investorName": "Park Investment Group",
					"industry":     "Food & Beverage",
				},
			},
			{
				ID:          "2",
				Type:        "signup",
				Description: "New brand registration: TechFix Solutions",
				Timestamp:   time.Date(2024, 1, 15, 13, 15, 0, 0, time.UTC),
				Status:      "pending",
				Details: map[string]interface{}{
					"companyName": "TechFix Solutions",
					"industry":    "Technology Services",
					"location":    "Austin, TX",
				},
			},
			{
				ID:          "3",
				Type:        "deal",
				Description: "Deal closed: FitZone Studios + Smith Capital Partners",
				Timestamp:   time.Date(2024, 1, 15, 11, 45, 0, 0, time.UTC),
				Status:      "success",
				Details: map[string]interface{}{
					"brandName":    "FitZone Studios",
					"investorName": "Smith Capital Partners",
					"dealValue":    320000,
					"industry":     "Health & Fitness",
				},
			},
			{
				ID:          "4",
				Type:        "report",
				Description: "User report: Inappropriate behavior by user ID 1847",
				Timestamp:   time.Date(2024, 1, 15, 10, 20, 0, 0, time.UTC),
				Status:      "warning",
				Details: map[string]interface{}{
					"reportedUserId": "user-1847",
					"reportType":     "inappropriate_message",
					"severity":       "medium",
				},
			},
		},
		Revenue: Revenue{
			Monthly: 124500,
			Breakdown: RevenueBreakdown{
				PremiumSubscriptions: 45600,
				SuccessFees:          52900,
				FeaturedListings:     26000,
			},
			GrowthRate:      12.3,
			ProjectedAnnual: 1494000,
		},
	}
}
