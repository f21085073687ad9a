package achievements

import "time"

func dedicationDefinitions() []Definition {
	return withCategory(CategoryDedication, []Definition{
		def("early_bird", "Early Bird", "Start 10 workouts between 4 and 7 in the morning", "sunrise",
			RarityUncommon, 40, atLeast(countSessions(hourBetween(4, 7)), 10, "workouts")),
		def("early_bird_50", "Dawn Patrol", "Start 50 workouts between 4 and 7 in the morning", "sunrise",
			RarityRare, 100, atLeast(countSessions(hourBetween(4, 7)), 50, "workouts")),
		def("night_owl", "Night Owl", "Start 10 workouts after 9 in the evening", "moon",
			RarityUncommon, 40, atLeast(countSessions(hourBetween(21, 4)), 10, "workouts")),
		def("lunch_break", "Lunch Break Lifter", "Start 10 workouts between 11 and 14", "coffee",
			RarityCommon, 25, atLeast(countSessions(hourBetween(11, 14)), 10, "workouts")),
		def("weekend_warrior", "Weekend Warrior", "Complete 10 workouts on weekends", "sofa",
			RarityCommon, 25, atLeast(countSessions(onWeekend), 10, "workouts")),
		def("weekend_warrior_50", "No Days Off", "Complete 50 workouts on weekends", "sofa",
			RarityRare, 90, atLeast(countSessions(onWeekend), 50, "workouts")),

		def("new_year_resolution", "Resolution Kept", "Complete 8 workouts in January", "sparkles",
			RarityUncommon, 40, atLeast(countSessions(inMonth(time.January)), 8, "workouts")),
		def("new_years_day", "Fresh Start", "Work out on New Year's Day", "sparkles",
			RarityRare, 70, atLeast(countSessions(onDate(time.January, 1)), 1, "workouts")),
		def("christmas", "Holiday Spirit", "Work out on Christmas Day", "gift",
			RarityRare, 70, atLeast(countSessions(onDate(time.December, 25)), 1, "workouts")),
		def("summer_grind", "Summer Grind", "Complete 12 workouts in August", "sun",
			RarityUncommon, 50, atLeast(countSessions(inMonth(time.August)), 12, "workouts")),

		def("long_cardio", "Long Haul", "Do 90 minutes of cardio in a single workout", "timer",
			RarityRare, 80, atLeast(bestSession(sessionCardioMin), 90, "min")),
		def("rpe_logger", "Self Aware", "Rate the effort of at least 90% of your strength sets (20 sets minimum)", "gauge",
			RarityUncommon, 40, atLeast(ratedShare, 0.9, "share")),
		def("rpe_rated_500", "Effort Analyst", "Rate the effort of 500 sets", "gauge",
			RarityRare, 80, atLeast(countSets(rated), 500, "sets")),
		def("hiit_fan", "Interval Fan", "Log 20 high intensity cardio sets", "zap",
			RarityUncommon, 40, atLeast(countSets(intensity("high")), 20, "sets")),
		def("speed_demon", "Speed Demon", "Run 5 km in 25 minutes or less", "wind",
			RarityRare, 100, atLeast(countSets(fasterThan(5, 25)), 1, "sets")),
		def("ten_k_under_50", "Ten K Flyer", "Run 10 km in 50 minutes or less", "wind",
			RarityEpic, 180, atLeast(countSets(fasterThan(10, 50)), 1, "sets")),
		def("cardio_long_set", "Endurance Engine", "Do a single cardio set of 60 minutes or more", "battery",
			RarityUncommon, 45, atLeast(countSets(durationAtLeast(60)), 1, "sets")),
	})
}
