package achievements

func varietyDefinitions() []Definition {
	return withCategory(CategoryVariety, []Definition{
		def("exercises_5", "Curious", "Try 5 different exercises", "shuffle",
			RarityCommon, 15, atLeast(distinctExercises(anySet), 5, "exercises")),
		def("exercises_15", "Explorer", "Try 15 different exercises", "shuffle",
			RarityUncommon, 40, atLeast(distinctExercises(anySet), 15, "exercises")),
		def("exercises_30", "Well Rounded", "Try 30 different exercises", "shuffle",
			RarityRare, 90, atLeast(distinctExercises(anySet), 30, "exercises")),
		def("exercises_50", "Encyclopedia", "Try 50 different exercises", "shuffle",
			RarityEpic, 180, atLeast(distinctExercises(anySet), 50, "exercises")),

		def("muscle_groups_3", "Spread Out", "Train 3 different muscle groups", "target",
			RarityCommon, 15, atLeast(distinctMuscleGroups, 3, "muscle groups")),
		def("muscle_groups_6", "Balanced", "Train 6 different muscle groups", "target",
			RarityUncommon, 40, atLeast(distinctMuscleGroups, 6, "muscle groups")),
		def("muscle_groups_10", "Complete Anatomy", "Train 10 different muscle groups", "target",
			RarityRare, 90, atLeast(distinctMuscleGroups, 10, "muscle groups")),

		def("weights_10", "Plate Mixer", "Lift 10 different weights", "disc",
			RarityCommon, 15, atLeast(distinctWeights(2.5), 10, "weights")),
		def("weights_25", "Full Rack", "Lift 25 different weights", "disc",
			RarityUncommon, 40, atLeast(distinctWeights(2.5), 25, "weights")),
		def("weights_50", "Every Plate", "Lift 50 different weights", "disc",
			RarityRare, 90, atLeast(distinctWeights(2.5), 50, "weights")),

		def("full_body_session", "Full Body", "Train 5 muscle groups in one workout", "body",
			RarityUncommon, 40, atLeast(bestSession(sessionMuscleGroups), 5, "muscle groups")),
		def("session_exercises_8", "Circuit Maker", "Do 8 different exercises in one workout", "list",
			RarityUncommon, 35, atLeast(bestSession(sessionExercises), 8, "exercises")),
		def("all_weekdays", "Any Day Works", "Work out on every day of the week", "calendar",
			RarityRare, 70, atLeast(distinctSessionValues(dayOfWeek), 7, "weekdays")),
		def("hours_8", "Flexible Schedule", "Start workouts at 8 different hours of the day", "clock",
			RarityUncommon, 40, atLeast(distinctSessionValues(hourOfDay), 8, "hours")),
		def("all_months", "All Seasons", "Work out in every month of the year", "sun",
			RarityEpic, 200, atLeast(distinctSessionValues(monthOfYear), 12, "months")),

		def("cardio_explorer", "Cardio Explorer", "Try 3 different cardio exercises", "heart",
			RarityCommon, 20, atLeast(distinctExercises(cardioSet), 3, "exercises")),
		def("cardio_tags", "Mixed Pace", "Log cardio with 4 different timing or intensity tags", "heart",
			RarityUncommon, 30, atLeast(distinctCardioTags, 4, "tags")),
		def("hybrid_athlete", "Hybrid Athlete", "Combine strength and cardio in 10 workouts", "split",
			RarityUncommon, 45, atLeast(countSessions(func(s SessionSummary) bool {
				return s.StrengthSets > 0 && s.CardioSets > 0
			}), 10, "workouts")),
	})
}
