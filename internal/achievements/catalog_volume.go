package achievements

func volumeDefinitions() []Definition {
	return withCategory(CategoryVolume, []Definition{
		def("sets_100", "Set Collector", "Complete 100 strength sets", "layers",
			RarityCommon, 20, atLeast(countSets(strengthSet), 100, "sets")),
		def("sets_500", "Set Hoarder", "Complete 500 strength sets", "layers",
			RarityUncommon, 50, atLeast(countSets(strengthSet), 500, "sets")),
		def("sets_1000", "Thousand Sets", "Complete 1,000 strength sets", "layers",
			RarityRare, 100, atLeast(countSets(strengthSet), 1000, "sets")),
		def("sets_5000", "Set Legend", "Complete 5,000 strength sets", "layers",
			RarityLegendary, 400, atLeast(countSets(strengthSet), 5000, "sets")),

		def("reps_1000", "Rep Counter", "Perform 1,000 strength reps", "hash",
			RarityCommon, 20, atLeast(sumReps(strengthSet), 1000, "reps")),
		def("reps_10000", "Rep Machine", "Perform 10,000 strength reps", "hash",
			RarityRare, 100, atLeast(sumReps(strengthSet), 10000, "reps")),
		def("reps_50000", "Rep God", "Perform 50,000 strength reps", "hash",
			RarityLegendary, 350, atLeast(sumReps(strengthSet), 50000, "reps")),

		def("volume_session_5000", "Heavy Day", "Move 5,000 kg in a single workout", "truck",
			RarityCommon, 20, atLeast(bestSession(sessionVolume), 5000, "kg")),
		def("volume_session_10000", "Ten Tonne Session", "Move 10,000 kg in a single workout", "truck",
			RarityUncommon, 50, atLeast(bestSession(sessionVolume), 10000, "kg")),
		def("volume_session_20000", "Freight Train", "Move 20,000 kg in a single workout", "truck",
			RarityEpic, 200, atLeast(bestSession(sessionVolume), 20000, "kg")),

		def("total_volume_100k", "Hundred Tonnes", "Move 100,000 kg in total", "mountain",
			RarityUncommon, 50, atLeast(sumSessions(sessionVolume), 100_000, "kg")),
		def("total_volume_1m", "Million Club", "Move 1,000,000 kg in total", "mountain",
			RarityRare, 150, atLeast(sumSessions(sessionVolume), 1_000_000, "kg")),
		def("total_volume_10m", "Tectonic", "Move 10,000,000 kg in total", "mountain",
			RarityLegendary, 500, atLeast(sumSessions(sessionVolume), 10_000_000, "kg")),

		def("session_sets_30", "Marathon Session", "Complete 30 sets in a single workout", "stack",
			RarityUncommon, 40, atLeast(bestSession(sessionSets), 30, "sets")),
		def("session_reps_300", "Rep Storm", "Perform 300 reps in a single workout", "stack",
			RarityRare, 80, atLeast(bestSession(sessionReps), 300, "reps")),
		def("week_volume_30000", "Heavy Week", "Move 30,000 kg in a single week", "calendar",
			RarityUncommon, 50, atLeast(bestWeek(sessionVolume), 30_000, "kg")),
		def("month_volume_150000", "Heavy Month", "Move 150,000 kg in a single month", "calendar",
			RarityRare, 120, atLeast(bestMonth(sessionVolume), 150_000, "kg")),

		def("hypertrophy_specialist", "Hypertrophy Specialist", "Complete 50 sets of 8 to 12 reps", "muscle",
			RarityUncommon, 40, atLeast(countSets(repsBetween(8, 12)), 50, "sets")),
		def("hypertrophy_master", "Hypertrophy Master", "Complete 500 sets of 8 to 12 reps", "muscle",
			RarityEpic, 200, atLeast(countSets(repsBetween(8, 12)), 500, "sets")),
		def("strength_range", "Low Rep Hero", "Complete 100 loaded sets of 1 to 5 reps", "anvil",
			RarityRare, 90, atLeast(countSets(allOf(repsBetween(1, 5), weightAtLeast(1))), 100, "sets")),
		def("leg_day_100", "Never Skip Leg Day", "Complete 100 sets for your legs", "leg",
			RarityUncommon, 45, atLeast(countSets(allOf(strengthSet, muscleGroup("legs"))), 100, "sets")),
		def("endurance_sets", "Burnout", "Complete 50 sets of 20 reps or more", "battery",
			RarityUncommon, 45, atLeast(countSets(repsAtLeast(20)), 50, "sets")),
	})
}
