package core

// The motor catalogue for the current build of the prototype. Only motors
// that are physically present get a descriptor; the remaining declared
// numbers are reserved for mechanisms not yet installed, and commands that
// name them report "undefined motor".

// The default for lifters is no gearing, ie 1:1, because most of them drive
// a leadscrew directly. The default for rotators is the "5:1" gearmotor sold
// by StepperOnline, also described as "5.18:1". The actual ratio is 5+2/11,
// or 5.1818181818, which we rationalize as 57/11. For more info, see the
// comments in Queue.
const (
	GearmotorBig   = 57 // 57:11 gearing in the gearmotor
	GearmotorSmall = 11
	MillDigitGearBig   = 2 // 32:16 (2:1) gearing in the Mill
	MillDigitGearSmall = 1
	StoreDigitGearBig   = 25 // 50:16 (25:8) gearing in the Store
	StoreDigitGearSmall = 8
)

// Catalogue returns the descriptors for the defined motors, unordered
// except that a name that begins with another name must come before it,
// so that it gets scanned first.
func Catalogue() []Motor {
	return []Motor{
		{Num: FP2K_R, Kind: Rotate, Name: "fp2k", Descr: "fixed long pinion 2 lock", GearBig: GearmotorBig, GearSmall: GearmotorSmall},
		{Num: MP2K_R, Kind: Rotate, Name: "mp2k", Descr: "movable long pinion 2 lock", GearBig: GearmotorBig, GearSmall: GearmotorSmall},
		{Num: P21_L, Kind: Lift, Name: "p21", Descr: "movable long pinion 2 connector to A2 lift"},
		{Num: P22_L, Kind: Lift, Name: "p22", Descr: "fixed long pinion 2 connector to A2 lift"},
		{Num: FC2_L, Kind: Lift, Name: "fc2", Descr: "carriage 2 connector"},
		{Num: REV2_L, Kind: Lift, Name: "rev2", Descr: "carriage 2 reversing pinion"},
		{Num: MP2_L, Kind: Lift, Name: "mp2", Descr: "movable long pinion 2 lift"},
		{Num: A2K_L, Kind: Lift, Name: "a2k", Descr: "A2 lock lift"},
		{Num: A2_L, Kind: Lift, Name: "a2l", Descr: "A2 finger lift", GearBig: GearmotorBig, GearSmall: GearmotorSmall},
		{Num: A2_R, Kind: Rotate, Name: "a2r", Descr: "A2 finger rotate", GearBig: MillDigitGearBig * GearmotorBig, GearSmall: MillDigitGearSmall * GearmotorSmall, CompLifter: A2_L},
		{Num: F2_L, Kind: Lift, Name: "f2l", Descr: "carriage 2 finger lift"},
		{Num: F2_R, Kind: Rotate, Name: "f2r", Descr: "carriage 2 finger rotate", GearBig: MillDigitGearBig, GearSmall: MillDigitGearSmall, CompLifter: F2_L},
		{Num: CL2_R, Kind: Rotate, Name: "cl2", Descr: "carry lifter 2 rotate", GearBig: GearmotorBig, GearSmall: GearmotorSmall},
		{Num: CS2_R, Kind: Rotate, Name: "cs2", Descr: "carry sector 2 rotate", GearBig: GearmotorBig, GearSmall: GearmotorSmall},
		{Num: CW2_L, Kind: Lift, Name: "cw2l", Descr: "carry warning 2 lift", GearBig: GearmotorBig, GearSmall: GearmotorSmall},
		{Num: CW2_R, Kind: Rotate, Name: "cw2r", Descr: "carry warning 2 rotate (for reset)", GearBig: MillDigitGearBig * GearmotorBig, GearSmall: MillDigitGearSmall * GearmotorSmall, CompLifter: CW2_L},
		{Num: CSK2_L, Kind: Lift, Name: "csk2l", Descr: "carry sector keepers 2 lift"},
		{Num: CSK2_R, Kind: Rotate, Name: "csk2r", Descr: "carry sector keepers 2 rotation", GearBig: MillDigitGearBig, GearSmall: MillDigitGearSmall, CompLifter: CSK2_L},
		{Num: S1_L, Kind: Lift, Name: "s1l", Descr: "store stack 1 lift"},
		{Num: S1_R, Kind: Rotate, Name: "s1r", Descr: "store stack 1 rotate", GearBig: StoreDigitGearBig * GearmotorBig, GearSmall: StoreDigitGearSmall * GearmotorSmall, CompLifter: S1_L},
		{Num: RR_L, Kind: Lift, Name: "rrl", Descr: "rack restore lift"},
		{Num: RR_R, Kind: Rotate, Name: "rrr", Descr: "rack restore rotate", GearBig: StoreDigitGearBig * GearmotorBig, GearSmall: StoreDigitGearSmall * GearmotorSmall, CompLifter: RR_L},
		{Num: RP2_L, Kind: Lift, Name: "rp2", Descr: "rack pinion 2 lift"},
		{Num: SIGN_L, Kind: Lift, Name: "signl", Descr: "sign lift"},
		{Num: SIGN_R, Kind: Rotate, Name: "signr", Descr: "sign rotate", GearBig: GearmotorBig, GearSmall: GearmotorSmall},
		{Num: CTR1_L, Kind: Lift, Name: "ctr1l", Descr: "counter 1 lift"},
		{Num: CTR1_R, Kind: Rotate, Name: "ctr1r", Descr: "counter 1 rotate", GearBig: GearmotorBig, GearSmall: GearmotorSmall},
		{Num: CTR2_L, Kind: Lift, Name: "ctr2l", Descr: "counter 2 lift"},
		{Num: CTR2_R, Kind: Rotate, Name: "ctr2r", Descr: "counter 2 rotate", GearBig: GearmotorBig, GearSmall: GearmotorSmall},
		{Num: RK_L, Kind: Lift, Name: "rk", Descr: "rack lock", FullSteps: true},
		{Num: TEST_R, Kind: Rotate, Name: "test", Descr: "test motor"},
	}
}
