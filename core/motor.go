package core

// Motor declarations, descriptors and runtime state for the prototype's
// stepper fleet. Motors are *declared* by assigning motor numbers below,
// *defined* by allocating a descriptor in the catalogue (see catalogue.go),
// and *assigned* physical positions on the daisy-chained boards from the
// wiring configuration, at which point they are usable.

const (
	MicrostepsPerStep   = 4   // drivers configured for 4 microsteps per step (MODE1 high)
	StepsPerRotation    = 200 // 1.8 degree step angle for Nema 11 2-phase stepper motor
	MicrostepsPerRotation = MicrostepsPerStep * StepsPerRotation

	DigitRepetitions = 1 // repetitions of 0-9 around each digit wheel
	DegreesPerDigit  = 360 / 10 / DigitRepetitions

	ExtraDegreesForCarry = 5 // backlash, and carry wheels are smaller

	NumStore  = 6 // store axles, not including the rack restorer
	NumBoards = 6 // daisy-chained motor control boards
	MotorsPerBoard = 16
)

// MotorID is a declared motor number, 0..NumMotors-1.
type MotorID int

// NoMotor marks an absent compensating-lifter reference.
const NoMotor MotorID = -1

// NoSwitch marks a motor whose index switch input was never wired.
const NoSwitch = -1

const (
	F2_R   MotorID = iota // carriage wheel finger rotate (0 can't be a lifter)
	F2_L                  // carriage wheel finger lift
	F3_L                  // carriage wheel finger lift
	F3_R                  // carriage wheel finger rotate
	A1_L                  // A figure wheel finger lift
	A1_R                  // A figure wheel finger rotate
	A2_L                  // A figure wheel finger lift
	A2_R                  // A figure wheel finger rotate
	A3_L                  // A figure wheel finger lift
	A3_R                  // A figure wheel finger rotate
	A1K_L                 // A figure wheel lock lift
	A2K_L                 // A figure wheel lock lift
	A3K_L                 // A figure wheel lock lift
	FC2_L                 // carriage wheel connector lift
	REV2_L                // reversing gear lift
	FC3_L                 // carriage wheel connector lift
	REV3_L                // reversing gear lift
	MP1_L                 // movable long pinion lift
	MP1K_R                // movable long pinion lock rotate
	MP2_L                 // movable long pinion lift
	MP2K_R                // movable long pinion lock rotate
	MP3_L                 // movable long pinion lift
	MP3K_R                // movable long pinion lock rotate
	P11_L                 // movable long pinion left connector lift
	P21_L                 // movable long pinion left connector lift
	P31_L                 // movable long pinion left connector lift
	P12_L                 // fixed long pinion left connector lift
	P22_L                 // fixed long pinion left connector lift
	P32_L                 // fixed long pinion left connector lift
	P13_L                 // movable long pinion right connector lift
	P23_L                 // movable long pinion right connector lift
	P14_L                 // fixed long pinion right connector lift
	P24_L                 // fixed long pinion right connector lift
	FP1K_R                // fixed long pinion lock rotate
	FP2K_R                // fixed long pinion lock rotate
	FP3K_R                // fixed long pinion lock rotate
	RP1_L                 // rack pinion lift
	RP2_L                 // rack pinion lift
	RP3_L                 // rack pinion lift
	CL2_R                 // carry lifter rotate
	CS2_R                 // carry sector rotate
	CW2_L                 // carry warning arms lift
	CW2_R                 // carry warning arms rotate (for reset)
	CSK2_R                // carry sector keepers rotate
	CSK2_L                // carry sector keepers lift
	CL3_R                 // carry lifter rotate
	CS3_R                 // carry sector rotate
	CW3_L                 // carry warning arms lift
	CW3_R                 // carry warning arms rotate (for reset)
	CSK3_R                // carry sector keepers rotate
	CSK3_L                // carry sector keepers lift
	S1_L                  // Store column lift
	S1_R                  // Store column rotate
	S2_L                  // Store column lift
	S2_R                  // Store column rotate
	S3_L                  // Store column lift
	S3_R                  // Store column rotate
	S4_L                  // Store column lift
	S4_R                  // Store column rotate
	S5_L                  // Store column lift
	S5_R                  // Store column rotate
	S6_L                  // Store column lift
	S6_R                  // Store column rotate
	RR_L                  // rack restorer lift
	RR_R                  // rack restorer rotate
	SIGN_R                // sign wheel rotate
	SIGN_L                // sign wheel lift
	CTR1_R                // counter 1 rotate
	CTR1_L                // counter 1 lift
	CTR2_R                // counter 2 rotate
	CTR2_L                // counter 2 lift
	RK_L                  // rack lock lift
	TEST_R                // a motor test driver
	NumMotors
)

// Movement is a motion kind: rotation in degrees or lift in mils.
type Movement int

const (
	Rotate Movement = iota
	Lift
	AnyMovement
)

func (m Movement) String() string {
	switch m {
	case Rotate:
		return "rotation"
	case Lift:
		return "lift"
	}
	return "movement"
}

// MotorState is the power state of one motor driver.
type MotorState int

const (
	Off MotorState = iota
	On
)

func (s MotorState) String() string {
	if s == On {
		return "on"
	}
	return "off"
}

// Motor is one motor descriptor plus its mutable runtime state.
type Motor struct {
	Num   MotorID // 0..NumMotors-1, as declared symbolically above
	Kind  Movement
	Name  string // axle name used in the "rot" and "lift" commands
	Descr string // more verbose description

	GearBig    int     // if not zero, gear reduction tooth counts
	GearSmall  int
	CompLifter MotorID // the lift motor counter-rotated when this motor rotates

	Assigned      bool // has this motor been assigned a controller?
	BoardNumber   int  // 1..NumBoards
	BoardPosition int  // 1..MotorsPerBoard on that board

	AlwaysOn  bool // should this motor be always enabled, ie powered on?
	FullSteps bool // round movements down to full steps so we can power down between movements
	TempOn    bool // is this motor temporarily held on?

	SwitchNum int // multiplexed index switch for this rotator's wheel, NoSwitch if unassigned

	State          MotorState
	StepOffset     int // current CW offset from a full-step position, 0..MicrostepsPerStep-1
	Deficit        int // numerator of the fractional microstep deficit; for the denominator see Queue

	MoveQueued bool
	MovingNow  bool
	Clockwise  bool
	UstepsNeeded int // movement steps needed across all time units
	UstepsDone   int // steps done in the current time unit
	EndingUstep  int // ending step number in the current time unit

	StartTime     int64 // starting time for steps, usec from the dispatch origin
	StepDeltaTime int64 // time between steps, usec
	LastUstepTime int64 // when the last step was done, usec

	StartPct, EndPct int // start and end of movement in the time unit, 0..99 (end may exceed 99)

	CurrentPos int // position relative to neutral, in units that depend on the axle
}

// MotorTable owns every defined motor. Descriptors are allocated once at
// boot; everything else refers to motors by MotorID.
type MotorTable struct {
	motors  []*Motor  // catalogue order; see Catalogue for the prefix rule
	byNum   [NumMotors]*Motor
	defined  int
	assigned int
}

// NewMotorTable builds the table from a catalogue of descriptors.
func NewMotorTable(catalogue []Motor) (*MotorTable, error) {
	t := &MotorTable{}
	for i := range catalogue {
		m := catalogue[i] // copy; descriptors live for the whole program
		if m.Num < 0 || m.Num >= NumMotors {
			return nil, &DuplicateMotorError{m.Num}
		}
		if t.byNum[m.Num] != nil {
			return nil, &DuplicateMotorError{m.Num}
		}
		m.State = Off
		if m.GearBig == 0 {
			m.GearBig, m.GearSmall = 1, 1
		}
		if m.CompLifter == 0 { // motor 0 is a rotator, so 0 can mean "none"
			m.CompLifter = NoMotor
		}
		m.SwitchNum = NoSwitch // wiring configuration assigns switch numbers later
		t.byNum[m.Num] = &m
		t.motors = append(t.motors, &m)
		t.defined++
	}
	return t, nil
}

// DuplicateMotorError reports a motor number defined twice in the catalogue.
type DuplicateMotorError struct{ Num MotorID }

func (e *DuplicateMotorError) Error() string {
	return "motor " + itoa(int(e.Num)) + " is duplicated"
}

// ByNum returns the descriptor for a declared motor, or nil if it was
// declared but never defined in the catalogue.
func (t *MotorTable) ByNum(num MotorID) *Motor {
	if num < 0 || num >= NumMotors {
		return nil
	}
	return t.byNum[num]
}

// ByName finds a motor by its exact axle name.
func (t *MotorTable) ByName(name string) *Motor {
	for _, m := range t.motors {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// All returns the defined motors in catalogue order.
func (t *MotorTable) All() []*Motor {
	return t.motors
}

// Counts reports how many motors are declared, defined and assigned.
func (t *MotorTable) Counts() (declared, defined, assigned int) {
	return int(NumMotors), t.defined, t.assigned
}

// Assign gives a motor a physical controller position on one of the boards.
func (t *MotorTable) Assign(num MotorID, board, position int) error {
	m := t.ByNum(num)
	if m == nil {
		return &AssignError{num, "not defined"}
	}
	if m.Assigned {
		return &AssignError{num, "already assigned"}
	}
	if board < 1 || board > NumBoards || position < 1 || position > MotorsPerBoard {
		return &AssignError{num, "bad board or position"}
	}
	m.Assigned = true
	m.BoardNumber = board
	m.BoardPosition = position
	t.assigned++
	return nil
}

// AssignError reports a bad motor assignment.
type AssignError struct {
	Num    MotorID
	Reason string
}

func (e *AssignError) Error() string {
	return "motor " + itoa(int(e.Num)) + ": " + e.Reason
}
