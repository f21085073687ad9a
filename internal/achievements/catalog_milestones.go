package achievements

func milestoneDefinitions() []Definition {
	return withCategory(CategoryMilestones, []Definition{
		def("first_workout", "First Steps", "Complete your first workout", "star",
			RarityCommon, 10, atLeast(sessionCount, 1, "workouts")),
		def("workouts_3", "Getting Started", "Complete 3 workouts", "star",
			RarityCommon, 15, atLeast(sessionCount, 3, "workouts")),
		def("workouts_10", "Committed", "Complete 10 workouts", "star",
			RarityCommon, 25, atLeast(sessionCount, 10, "workouts")),
		def("workouts_25", "Dedicated", "Complete 25 workouts", "medal",
			RarityUncommon, 50, atLeast(sessionCount, 25, "workouts")),
		def("workouts_50", "Half Century", "Complete 50 workouts", "medal",
			RarityUncommon, 75, atLeast(sessionCount, 50, "workouts")),
		def("workouts_100", "Centurion", "Complete 100 workouts", "medal",
			RarityRare, 150, atLeast(sessionCount, 100, "workouts")),
		def("workouts_250", "Gym Veteran", "Complete 250 workouts", "crown",
			RarityEpic, 300, atLeast(sessionCount, 250, "workouts")),
		def("workouts_500", "Living Legend", "Complete 500 workouts", "crown",
			RarityLegendary, 500, atLeast(sessionCount, 500, "workouts")),
		def("workouts_1000", "Immortal", "Complete 1,000 workouts", "crown",
			RarityLegendary, 1000, atLeast(sessionCount, 1000, "workouts")),

		def("first_cardio", "First Miles", "Log your first cardio set", "heart",
			RarityCommon, 10, atLeast(countSets(cardioSet), 1, "sets")),
		def("first_pr", "Personal Best", "Beat your best weight on any exercise", "trending-up",
			RarityCommon, 15, atLeast(personalRecords, 1, "records")),
		def("prs_25", "Record Breaker", "Set 25 personal records", "trending-up",
			RarityRare, 100, atLeast(personalRecords, 25, "records")),
		def("prs_100", "Record Machine", "Set 100 personal records", "trending-up",
			RarityLegendary, 350, atLeast(personalRecords, 100, "records")),

		def("one_year_in", "Anniversary", "Keep training for a year since your first workout", "cake",
			RarityRare, 150, atLeast(daysSinceFirst, 365, "days")),
		def("two_years_in", "Lifer", "Keep training for two years since your first workout", "cake",
			RarityEpic, 250, atLeast(daysSinceFirst, 730, "days")),

		def("cardio_km_100", "Hundred Kilometers", "Cover 100 km of cardio in total", "route",
			RarityUncommon, 60, atLeast(sumSessions(sessionCardioKm), 100, "km")),
		def("cardio_km_1000", "Thousand Kilometers", "Cover 1,000 km of cardio in total", "route",
			RarityEpic, 300, atLeast(sumSessions(sessionCardioKm), 1000, "km")),
		def("cardio_hours_50", "Fifty Hours", "Spend 50 hours on cardio in total", "timer",
			RarityRare, 120, atLeast(sumSessions(sessionCardioMin), 3000, "min")),
		def("first_5k", "First 5K", "Cover 5 km in a single cardio set", "flag",
			RarityCommon, 20, atLeast(countSets(distanceAtLeast(5)), 1, "sets")),
		def("half_marathon", "Half Marathon", "Cover 21.1 km in a single cardio set", "flag",
			RarityRare, 120, atLeast(countSets(distanceAtLeast(21.1)), 1, "sets")),
		def("marathon", "Marathoner", "Cover 42.2 km in a single cardio set", "flag",
			RarityLegendary, 400, atLeast(countSets(distanceAtLeast(42.2)), 1, "sets")),
	})
}
