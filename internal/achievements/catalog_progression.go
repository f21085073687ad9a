package achievements

func progressionDefinitions() []Definition {
	return withCategory(CategoryProgression, []Definition{
		def("bench_progress_5", "Bench Climber", "Increase your top bench press weight 5 times", "stairs",
			RarityUncommon, 40, atLeast(weightIncreases("bench"), 5, "increases")),
		def("bench_progress_20", "Bench Ascent", "Increase your top bench press weight 20 times", "stairs",
			RarityRare, 120, atLeast(weightIncreases("bench"), 20, "increases")),
		def("squat_progress_5", "Squat Climber", "Increase your top squat weight 5 times", "stairs",
			RarityUncommon, 40, atLeast(weightIncreases("squat"), 5, "increases")),
		def("squat_progress_20", "Squat Ascent", "Increase your top squat weight 20 times", "stairs",
			RarityRare, 120, atLeast(weightIncreases("squat"), 20, "increases")),
		def("deadlift_progress_5", "Deadlift Climber", "Increase your top deadlift weight 5 times", "stairs",
			RarityUncommon, 40, atLeast(weightIncreases("deadlift"), 5, "increases")),
		def("deadlift_progress_20", "Deadlift Ascent", "Increase your top deadlift weight 20 times", "stairs",
			RarityRare, 120, atLeast(weightIncreases("deadlift"), 20, "increases")),

		def("bench_doubled", "Bench Doubled", "Double your first recorded bench press weight", "x2",
			RarityEpic, 200, atLeast(runningMaxRatio("bench"), 2, "x")),
		def("squat_doubled", "Squat Doubled", "Double your first recorded squat weight", "x2",
			RarityEpic, 200, atLeast(runningMaxRatio("squat"), 2, "x")),
		def("deadlift_doubled", "Deadlift Doubled", "Double your first recorded deadlift weight", "x2",
			RarityEpic, 200, atLeast(runningMaxRatio("deadlift"), 2, "x")),

		def("drop_set", "Drop It", "Lower the weight for the next set of an exercise", "arrow-down",
			RarityCommon, 20, atLeast(plateauDrops(1), 1, "drop sets")),
		def("plateau_drop_10", "Strip the Rack", "Drop the weight after two sets at the same load, 10 times", "arrow-down",
			RarityUncommon, 45, atLeast(plateauDrops(2), 10, "drop sets")),
		def("drop_set_50", "Drop Set Devotee", "Do 50 drop sets", "arrow-down",
			RarityRare, 80, atLeast(plateauDrops(1), 50, "drop sets")),
		def("pyramid", "Pyramid Builder", "Raise the weight over 4 sets in a row within one exercise", "triangle",
			RarityCommon, 20, atLeast(pyramids(4), 1, "pyramids")),
		def("pyramid_25", "Pharaoh", "Build 25 pyramids", "triangle",
			RarityRare, 80, atLeast(pyramids(4), 25, "pyramids")),
	})
}
