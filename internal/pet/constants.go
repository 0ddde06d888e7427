package pet

import "time"

// Stat bounds and thresholds
const (
	MaxStat          = 100.0
	MinStat          = 0.0
	LowStatThreshold = 30.0 // below this the pet is sad and complains
	MaxPoops         = 5
	CleanPerPoop     = 20.0 // cleanliness lost per poop on the floor

	MinPoopMultiplier = 1.0
	MaxPoopMultiplier = 3.0

	StarvingThreshold = 20.0 // hunger below this hurts health
	FullThreshold     = 90.0 // hunger at or above this refuses food
	NoPlayThreshold   = 90.0 // happiness at or above this refuses play
	TiredThreshold    = 20.0 // energy at or below this refuses play
	DrowsyThreshold   = 30.0 // energy at or below this allows spontaneous sleep
	ElatedThreshold   = 90.0 // happiness at or above this allows spontaneous happy
	SillyThreshold    = 75.0 // happiness above this allows a silly follow-up after eating
	HealthyThreshold  = 90.0 // health at or above this refuses medicine unless sick
	SicklyThreshold   = 30.0 // health below this triggers "I feel sick!"
	FilthyPoops       = 4    // poops at or above this trigger the dirty complaint and bigger clean bonus
)

// Action effects
const (
	FeedHungerGain     = 30.0
	OverfeedPenalty    = 10.0 // health
	PlayHappinessGain  = 30.0
	PlayEnergyCost     = 20.0
	PlayHungerCost     = 15.0
	TiredPlayHealth    = 15.0
	TiredPlayEnergy    = 10.0
	CleanHappinessGain = 10.0
	DeepCleanGain      = 20.0
	RestlessPenalty    = 15.0 // happiness lost when sent to bed while energetic
	CureHealthGain     = 40.0
	CureHappinessCost  = 10.0
	TonicHealthGain    = 30.0
	TonicHappinessCost = 20.0
)

// Per-tick health damage
const (
	StarvingDamage = 0.5
	DirtyDamage    = 0.4 // 3+ poops
	FilthyDamage   = 0.6 // 4+ poops
	SqualidDamage  = 1.0 // 5 poops
	SicknessDamage = 0.8
)

// Behavior timings
const (
	EatDuration      = 2800 * time.Millisecond // 28 frames at 10fps
	PoopDuration     = 1600 * time.Millisecond // 16 frames at 10fps
	SillyDuration    = 2400 * time.Millisecond
	WalkDuration     = 2 * time.Second
	HappyDuration    = 1500 * time.Millisecond
	PostPoopDelay    = 300 * time.Millisecond
	HeartStagger     = 150 * time.Millisecond
	SleepRestoreStep = time.Second
)

// Playfield
const (
	FieldMinX = 15.0
	FieldMaxX = 70.0
	FieldMinY = 150.0
	FieldMaxY = 250.0

	PoopOffsetY   = 50.0 // poops land behind the pet
	FarMoveMin    = 30.0
	FarMoveSpread = 20.0
)

// Home is where the pet starts and returns on restart.
var Home = Point{X: 42.5, Y: 200}

// dirtTier is one step of the escalating dirtiness penalty. Every tier whose
// poop count is reached applies.
type dirtTier struct {
	poops     int
	happiness float64
	energy    float64
	hunger    float64
}

var dirtTiers = []dirtTier{
	{poops: 2, happiness: 3},
	{poops: 3, happiness: 5},
	{poops: 4, happiness: 7, energy: 5},
	{poops: 5, happiness: 10, energy: 8, hunger: 5},
}

// Messages
const (
	msgWait         = "Wait a moment!"
	msgTooFull      = "I'm too full!"
	msgYum          = "Yum yum!"
	msgTooTired     = "I'm too tired!"
	msgNoPlay       = "I don't want to play now!"
	msgPlay         = "Yay! So fun!"
	msgAlreadyClean = "Everything is clean!"
	msgClean        = "So clean!"
	msgCleanSick    = "So clean! But I still feel sick..."
	msgNotSleepy    = "I don't want to sleep now!"
	msgSleep        = "Zzz..."
	msgCollapse     = "So... tired... Zzz"
	msgNoMedicine   = "I don't need medicine!"
	msgCured        = "I feel much better!"
	msgMedicine     = "Yuck! Bad taste!"
	msgOops         = "Oops..."
	msgScooped      = "Cleaned!"
	msgNoPoop       = "Nothing to clean there."
	msgNight        = "Night time..."
	msgMorning      = "Good morning!"
)
