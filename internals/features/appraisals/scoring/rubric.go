package scoring

// Appraisal domains of the fixed three-rubric flow.
type Domain string

const (
	DomainAcademic       Domain = "academic"
	DomainSocioEmotional Domain = "socio_emotional"
	DomainCareer         Domain = "career"
)

// Band is one evaluation range. Min/Max are the boundaries as published to
// counselors; membership for the fixed tables is decided by Min alone (see
// Evaluate), Max is display data.
type Band struct {
	Min         float64 `json:"min_score"`
	Max         float64 `json:"max_score"`
	Label       string  `json:"evaluation"`
	Description string  `json:"description"`
	Suggestion  string  `json:"suggestion"`
	Color       string  `json:"color"`
}

// Fixed rubric tables: 3 domains × 5 bands. Boundaries and labels are part of
// the compatibility surface, do not reword them.
var domainRubrics = map[Domain][]Band{
	DomainAcademic: {
		{1.0, 1.99, "Very Low Academic Performance",
			"The student is struggling across most subjects and shows very low engagement with schoolwork.",
			"Set up an immediate one-on-one session, involve subject teachers, and build a remediation plan with weekly follow-ups.",
			"red"},
		{2.0, 2.99, "Low Academic Performance",
			"The student is performing below expectations and may be missing foundational skills or study habits.",
			"Recommend structured study schedules and peer tutoring, and monitor progress each grading period.",
			"orange"},
		{3.0, 3.99, "Moderate Academic Performance",
			"The student keeps up with requirements but has room to strengthen consistency and depth of understanding.",
			"Encourage active recall techniques and goal-setting for the subjects with the lowest marks.",
			"yellow"},
		{4.0, 4.49, "High Academic Performance",
			"The student performs well across subjects and manages requirements with confidence.",
			"Offer enrichment activities and leadership roles in group work to sustain momentum.",
			"green"},
		{4.5, 5.0, "Very High Academic Performance",
			"The student consistently excels academically and demonstrates strong independent learning.",
			"Point the student toward academic competitions, advanced tracks, or mentoring younger students.",
			"emerald"},
	},
	DomainSocioEmotional: {
		{1.0, 1.99, "Depressed/Highly Anxious",
			"Responses indicate serious emotional distress that is likely affecting daily functioning.",
			"Schedule an urgent counseling session and consider referral to a licensed mental health professional.",
			"red"},
		{2.0, 2.99, "Stressed/Low",
			"The student reports frequent stress or low mood and limited coping strategies.",
			"Teach stress-management and grounding techniques, and check in again within two weeks.",
			"orange"},
		{3.0, 3.99, "Neutral/Stable",
			"The student is emotionally stable overall with ordinary ups and downs.",
			"Reinforce existing coping habits and encourage participation in wellness activities.",
			"yellow"},
		{4.0, 4.49, "Well-balanced",
			"The student manages emotions well and maintains healthy relationships with peers.",
			"Invite the student to peer-support programs where their stability can help others.",
			"green"},
		{4.5, 5.0, "Highly Resilient",
			"The student shows strong resilience, self-awareness, and emotional regulation.",
			"Consider the student for peer-counseling or student-leadership roles.",
			"emerald"},
	},
	DomainCareer: {
		{1.0, 1.99, "Lack of Direction",
			"The student has not identified interests or plans and feels lost about what comes after school.",
			"Start with interest inventories and exposure activities before any track or course discussion.",
			"red"},
		{2.0, 2.99, "Uncertain",
			"The student has vague ideas about the future but no concrete direction yet.",
			"Walk through career pathways aligned to the student's strongest subjects and interests.",
			"orange"},
		{3.0, 3.99, "Moderate Clarity",
			"The student has a general direction but needs help narrowing options and planning steps.",
			"Help the student shortlist two or three options and map the requirements for each.",
			"yellow"},
		{4.0, 4.49, "Clear Path",
			"The student has a defined goal and a realistic sense of how to reach it.",
			"Connect the student with mentors or immersion activities in the chosen field.",
			"green"},
		{4.5, 5.0, "Strong Focus",
			"The student has a firm career goal and is already taking deliberate steps toward it.",
			"Support with scholarship leads, competitions, and advanced opportunities in the field.",
			"emerald"},
	},
}

// Evaluate maps a domain score onto its fixed rubric band.
//
// Boundary rule: bands are published as inclusive [Min,Max] pairs (1.0-1.99,
// 2.0-2.99, ...) which leave float gaps like 2.995 uncovered when read
// literally. Membership is therefore decided by greatest lower bound: the
// band with the highest Min not exceeding the score wins. 2.99 and 2.995
// both land in the 2.0-2.99 band; 3.0 lands in 3.0-3.99.
// Scores below 1.0 have no band and return ErrRubricNotFound.
func Evaluate(domain Domain, score float64) (Band, error) {
	bands, ok := domainRubrics[domain]
	if !ok {
		return Band{}, ErrRubricNotFound
	}
	if score > ResponseMax {
		return Band{}, ErrRubricNotFound
	}
	for i := len(bands) - 1; i >= 0; i-- {
		if score >= bands[i].Min {
			return bands[i], nil
		}
	}
	return Band{}, ErrRubricNotFound
}

// DomainBands exposes a copy of a fixed rubric table, for rendering.
func DomainBands(domain Domain) ([]Band, bool) {
	bands, ok := domainRubrics[domain]
	if !ok {
		return nil, false
	}
	out := make([]Band, len(bands))
	copy(out, bands)
	return out, true
}

// The overall (chat-assistant) rubric is a separate 6-band table over [0,5]
// and must not be conflated with the domain rubrics above.
var overallRubric = []Band{
	{0.0, 0.0, "Not Yet Evaluated",
		"No appraisal has been recorded for this student yet.",
		"Ask the student to complete an appraisal first.",
		"gray"},
	{0.01, 1.49, "Critical",
		"The overall appraisal score is critically low.",
		"Prioritize this student for an immediate counseling session.",
		"red"},
	{1.5, 2.49, "Fair",
		"The overall appraisal score is below the healthy range.",
		"Schedule a follow-up session and agree on small, concrete goals.",
		"orange"},
	{2.5, 3.49, "Good",
		"The overall appraisal score is within the healthy range.",
		"Maintain regular check-ins each grading period.",
		"yellow"},
	{3.5, 4.49, "Very Good",
		"The overall appraisal score is strong across areas.",
		"Encourage the student to keep their current habits and routines.",
		"green"},
	{4.5, 5.0, "Excellent",
		"The overall appraisal score is excellent across all areas.",
		"Celebrate the result and explore enrichment opportunities.",
		"emerald"},
}

// OverallEvaluate maps an overall score in [0,5] onto the assistant rubric.
// Exactly zero means no appraisal on record.
func OverallEvaluate(score float64) (Band, error) {
	if score < 0 || score > ResponseMax {
		return Band{}, ErrRubricNotFound
	}
	if score == 0 {
		return overallRubric[0], nil
	}
	for i := len(overallRubric) - 1; i >= 1; i-- {
		if score >= overallRubric[i].Min {
			return overallRubric[i], nil
		}
	}
	// any positive score below 1.5 is Critical
	return overallRubric[1], nil
}

// MatchCriteria resolves a score against counselor-authored bands using
// literal inclusive [Min,Max] containment, first match wins. Counselor data
// may leave gaps; a gap surfaces as ErrRubricNotFound for the caller to
// report rather than silently picking a neighbor.
func MatchCriteria(bands []Band, score float64) (Band, error) {
	for _, b := range bands {
		if score >= b.Min && score <= b.Max {
			return b, nil
		}
	}
	return Band{}, ErrRubricNotFound
}
