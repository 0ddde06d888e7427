package pet

// Status emoji
const (
	StatusEmojiDead     = "💀"
	StatusEmojiSleeping = "😴"
	StatusEmojiHappy    = "😊"
	StatusEmojiSick     = "🤢"
	StatusEmojiTired    = "😫"
	StatusEmojiHungry   = "🍖"
	StatusEmojiSad      = "😢"
	StatusEmojiDirty    = "💩"
)

var activityEmoji = map[Behavior]string{
	Idle:         StatusEmojiHappy,
	Walk:         "🚶",
	Eat:          "😋",
	PoopBehavior: StatusEmojiDirty,
	Sad:          StatusEmojiSad,
	Sleep:        StatusEmojiSleeping,
	Happy:        "🥰",
	Sick:         StatusEmojiSick,
	Silly:        "🤪",
}

// GetStatus returns the status emoji(s) for the pet
func GetStatus(st State) string {
	if !st.Alive {
		return StatusEmojiDead
	}

	// Icon 1: Activity (what pet is DOING)
	activity := activityEmoji[st.Behavior]

	// Icon 2: Feeling (most critical need)
	if st.Sick {
		return activity + StatusEmojiSick
	}

	lowestStat := st.Health
	lowestFeeling := StatusEmojiSick

	if st.Energy < lowestStat {
		lowestStat = st.Energy
		lowestFeeling = StatusEmojiTired
	}
	if st.Hunger < lowestStat {
		lowestStat = st.Hunger
		lowestFeeling = StatusEmojiHungry
	}
	if st.Happiness < lowestStat {
		lowestStat = st.Happiness
		lowestFeeling = StatusEmojiSad
	}
	if st.Cleanliness < lowestStat {
		lowestStat = st.Cleanliness
		lowestFeeling = StatusEmojiDirty
	}

	if lowestStat < LowStatThreshold {
		return activity + lowestFeeling
	}
	if st.Energy < DrowsyThreshold && !st.Sleeping() {
		return activity + "🥱"
	}
	return activity
}

// GetStatusWithLabel returns status with text labels for the UI
func GetStatusWithLabel(st State) string {
	if !st.Alive {
		return StatusEmojiDead + " Gone"
	}

	status := GetStatus(st)

	switch st.Behavior {
	case Sleep:
		return status + " Sleeping"
	case Eat:
		return status + " Eating"
	case PoopBehavior:
		return status + " Busy..."
	case Walk:
		return status + " Wandering"
	case Happy:
		return status + " Excited!"
	case Silly:
		return status + " Being silly!"
	}

	switch {
	case st.Sick:
		return status + " Sick"
	case st.Critical():
		return status + " Miserable"
	case st.Low():
		return status + " Sad"
	case st.Energy < DrowsyThreshold:
		return status + " Drowsy"
	default:
		return status + " Happy"
	}
}
