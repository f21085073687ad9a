package achievements

func strengthDefinitions() []Definition {
	return withCategory(CategoryStrength, []Definition{
		def("bench_60", "Bench Beginner", "Bench press 60 kg", "dumbbell",
			RarityCommon, 20, atLeast(maxWeight("bench"), 60, "kg")),
		def("bench_100", "Plate Pusher", "Bench press 100 kg", "dumbbell",
			RarityRare, 100, atLeast(maxWeight("bench"), 100, "kg")),
		def("bench_140", "Bench Beast", "Bench press 140 kg", "dumbbell",
			RarityLegendary, 300, atLeast(maxWeight("bench"), 140, "kg")),
		def("squat_100", "Century Squat", "Squat 100 kg", "barbell",
			RarityUncommon, 50, atLeast(maxWeight("squat"), 100, "kg")),
		def("squat_140", "Deep Power", "Squat 140 kg", "barbell",
			RarityRare, 120, atLeast(maxWeight("squat"), 140, "kg")),
		def("squat_180", "Quad God", "Squat 180 kg", "barbell",
			RarityEpic, 250, atLeast(maxWeight("squat"), 180, "kg")),
		def("deadlift_100", "Floor Breaker", "Deadlift 100 kg", "weight",
			RarityUncommon, 40, atLeast(maxWeight("deadlift"), 100, "kg")),
		def("deadlift_180", "Heavy Puller", "Deadlift 180 kg", "weight",
			RarityRare, 150, atLeast(maxWeight("deadlift"), 180, "kg")),
		def("deadlift_250", "Earth Mover", "Deadlift 250 kg", "weight",
			RarityLegendary, 400, atLeast(maxWeight("deadlift"), 250, "kg")),
		def("overhead_60", "Sky High", "Overhead press 60 kg", "arrow-up",
			RarityRare, 80, atLeast(maxWeight("overhead"), 60, "kg")),

		def("bench_bodyweight", "Own Weight Bench", "Bench press your bodyweight", "scale",
			RarityUncommon, 60, atLeastBodyweight("bench", 1)),
		def("squat_double_bodyweight", "Double Squat", "Squat twice your bodyweight", "scale",
			RarityEpic, 250, atLeastBodyweight("squat", 2)),
		def("deadlift_2_5_bodyweight", "Gravity Defier", "Deadlift two and a half times your bodyweight", "scale",
			RarityLegendary, 400, atLeastBodyweight("deadlift", 2.5)),

		def("heavy_lifter", "Triple Digits", "Lift 100 kg in any exercise", "anvil",
			RarityUncommon, 40, atLeast(heaviestSet, 100, "kg")),
		def("estimated_1rm_bench_100", "Hundred Potential", "Reach an estimated 100 kg bench press max", "chart",
			RarityRare, 100, atLeast(bestOneRepMax("bench"), 100, "kg")),
		def("estimated_1rm_squat_150", "Squat Potential", "Reach an estimated 150 kg squat max", "chart",
			RarityRare, 120, atLeast(bestOneRepMax("squat"), 150, "kg")),
		def("estimated_1rm_deadlift_200", "Deadlift Potential", "Reach an estimated 200 kg deadlift max", "chart",
			RarityEpic, 220, atLeast(bestOneRepMax("deadlift"), 200, "kg")),
		def("powerlifting_total_500", "Five Hundred Club", "Bench, squat and deadlift maxes adding up to 500 kg", "trophy",
			RarityEpic, 200, atLeast(powerliftingTotal, 500, "kg")),

		def("pullups_15", "Bar Master", "Do 15 bodyweight pull-ups in one set", "person",
			RarityRare, 80, atLeast(mostRepsInSet(allOf(named("pull"), bodyweightSet)), 15, "reps")),
		def("pushups_50", "Push-up Machine", "Do 50 push-ups in one set", "person",
			RarityUncommon, 50, atLeast(mostRepsInSet(allOf(named("push"), bodyweightSet)), 50, "reps")),
		def("max_effort", "Max Effort", "Log a set at RPE 10", "bolt",
			RarityCommon, 15, atLeast(countSets(rpeAtLeast(10)), 1, "sets")),
		def("rpe_9_sets_50", "Redline", "Log 50 sets at RPE 9 or higher", "bolt",
			RarityRare, 80, atLeast(countSets(rpeAtLeast(9)), 50, "sets")),
	})
}

func powerliftingTotal(h *History) float64 {
	return maxWeight("bench")(h) + maxWeight("squat")(h) + maxWeight("deadlift")(h)
}
