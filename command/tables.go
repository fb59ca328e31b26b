package command

import "babbage/core"

// The functional movement tables. Each entry maps keywords, usually
// starting with an axle name, to the motor that serves it and either the
// position it should move to or the distance it should move. Longer
// keyword sets come first so they get scanned first in case later ones
// are prefixes. Entries naming motors of mechanisms not yet installed
// stay in the tables; using them reports "undefined motor".

// noMove marks a table entry used for searching, not moving.
const noMove = int(^uint(0) >> 1)

// fctMove is a basic movement specification.
type fctMove struct {
	keyword  string       // keywords, the first often identifying the axle to move
	motorNum core.MotorID // the motor to move
	position int          // where it should move to (positive: up or clockwise)
	distance bool         // or, if this is true, the distance it should move
}

// How far in mils to move the store digit wheels to engage with only the
// rack, for writing, or with both the rack and the finger, for reading.
const (
	storeRack   = 270
	storeFinger = 525
)

var fctGiveoff = []fctMove{
	{keyword: "A2", motorNum: core.A2_R},
	{keyword: "F2", motorNum: core.F2_R}, {keyword: "F3", motorNum: core.F3_R},
	{keyword: "S1", motorNum: core.S1_R}, {keyword: "S2", motorNum: core.S2_R}, {keyword: "S3", motorNum: core.S3_R},
	{keyword: "S4", motorNum: core.S4_R}, {keyword: "S5", motorNum: core.S5_R}, {keyword: "S6", motorNum: core.S6_R},
	{keyword: "RR", motorNum: core.RR_R},
}

var fctLock = []fctMove{
	{"A1 top", core.A1K_L, -300, false}, {"A1 bot", core.A1K_L, +300, false}, {"A1", core.A1K_L, 0, false},
	{"A2 top", core.A2K_L, -300, false}, {"A2 bot", core.A2K_L, +300, false}, {"A2", core.A2K_L, 0, false},
	{"A3 top", core.A3K_L, -300, false}, {"A3 bot", core.A3K_L, +300, false}, {"A3", core.A3K_L, 0, false},
	{"FP1", core.FP1K_R, 0, false}, {"MP1", core.MP1K_R, 0, false},
	{"FP2", core.FP2K_R, 0, false}, {"MP2", core.MP2K_R, 0, false},
	{"FP3", core.FP3K_R, 0, false}, {"MP3", core.MP3K_R, 0, false},
}

var fctLock1 = []fctMove{
	{"FP1", core.FP1K_R, 30, false}, {"MP1", core.MP1K_R, 30, false},
	{"FP2", core.FP2K_R, 30, false}, {"MP2", core.MP2K_R, 30, false},
	{"FP3", core.FP3K_R, 30, false}, {"MP3", core.MP3K_R, 30, false},
}

var fctUnlock = []fctMove{
	{"A1 top", core.A1K_L, +300, false}, {"A1 bot", core.A1K_L, -300, false}, {"A1", core.A1K_L, +550, false},
	{"A2 top", core.A2K_L, +300, false}, {"A2 bot", core.A2K_L, -300, false}, {"A2", core.A2K_L, +550, false},
	{"A3 top", core.A3K_L, +300, false}, {"A3 bot", core.A3K_L, -300, false}, {"A3", core.A3K_L, +550, false},
	{"FP1", core.FP1K_R, 15, false}, {"MP1", core.MP1K_R, 15, false},
	{"FP2", core.FP2K_R, 15, false}, {"MP2", core.MP2K_R, 15, false},
	{"FP3", core.FP3K_R, 15, false}, {"MP3", core.MP3K_R, 15, false},
}

var fctMesh = []fctMove{
	{"FP1 A1 top", core.P12_L, 400, false}, {"FP1 A1 bot", core.P12_L, -400, false},
	{"MP1 A1 top", core.P11_L, 400, false}, {"MP1 A1 bot", core.P11_L, -400, false},
	{"FP1 A2 top", core.P14_L, 400, false}, {"FP1 A2 bot", core.P14_L, -400, false},
	{"MP1 A2 top", core.P13_L, 400, false}, {"MP1 A2 bot", core.P13_L, -400, false},
	{"FP2 A2 top", core.P22_L, 400, false}, {"FP2 A2 bot", core.P22_L, -400, false},
	{"MP2 A2 top", core.P21_L, 400, false}, {"MP2 A2 bot", core.P21_L, -400, false},
	{"FP2 A3 top", core.P24_L, 400, false}, {"FP2 A3 bot", core.P24_L, -400, false},
	{"MP2 A3 top", core.P23_L, 400, false}, {"MP2 A3 bot", core.P23_L, -400, false},
	{"FP3 A3 top", core.P32_L, 400, false}, {"FP3 A3 bot", core.P32_L, -400, false},
	{"MP3 A3 top", core.P31_L, 400, false}, {"MP3 A3 bot", core.P31_L, -400, false},
	{"RP1 A1 top", core.RP1_L, 1220, false}, {"RP1 A1 bot", core.RP1_L, 370, false}, {"RP1 MP1", core.RP1_L, (1220 + 370) / 2, false},
	{"RP2 A2 top", core.RP2_L, 1220, false}, {"RP2 A2 bot", core.RP2_L, 370, false}, {"RP2 MP2", core.RP2_L, (1220 + 370) / 2, false},
	{"REV2", core.REV2_L, 400, false}, {"FC2", core.FC2_L, 400, false},
	{"REV3", core.REV3_L, 400, false}, {"FC3", core.FC3_L, 400, false},
	{"S1 top rack", core.S1_L, -storeRack, false}, {"S1 bot rack", core.S1_L, storeRack, false},
	{"S1 top finger", core.S1_L, -storeFinger, false}, {"S1 bot finger", core.S1_L, storeFinger, false},
	{"S2 top rack", core.S2_L, -storeRack, false}, {"S2 bot rack", core.S2_L, storeRack, false},
	{"S2 top finger", core.S2_L, -storeFinger, false}, {"S2 bot finger", core.S2_L, storeFinger, false},
	{"S3 top rack", core.S3_L, -storeRack, false}, {"S3 bot rack", core.S3_L, storeRack, false},
	{"S3 top finger", core.S3_L, -storeFinger, false}, {"S3 bot finger", core.S3_L, storeFinger, false},
	{"S4 top rack", core.S4_L, -storeRack, false}, {"S4 bot rack", core.S4_L, storeRack, false},
	{"S4 top finger", core.S4_L, -storeFinger, false}, {"S4 bot finger", core.S4_L, storeFinger, false},
	{"S5 top rack", core.S5_L, -storeRack, false}, {"S5 bot rack", core.S5_L, storeRack, false},
	{"S5 top finger", core.S5_L, -storeFinger, false}, {"S5 bot finger", core.S5_L, storeFinger, false},
	{"S6 top rack", core.S6_L, -storeRack, false}, {"S6 bot rack", core.S6_L, storeRack, false},
	{"S6 top finger", core.S6_L, -storeFinger, false}, {"S6 bot finger", core.S6_L, storeFinger, false},
	{"RR top rack", core.RR_L, -storeRack, false}, {"RR bot rack", core.RR_L, storeRack, false},
	{"RR top finger", core.RR_L, -storeFinger, false}, {"RR bot finger", core.RR_L, storeFinger, false},
}

var fctUnmesh = []fctMove{
	{"FP1 A1", core.P12_L, 0, false}, {"MP1 A1", core.P11_L, 0, false},
	{"FP1 A2", core.P14_L, 0, false}, {"MP1 A2", core.P13_L, 0, false},
	{"FP2 A2", core.P22_L, 0, false}, {"MP2 A2", core.P21_L, 0, false},
	{"FP2 A3", core.P24_L, 0, false}, {"MP2 A3", core.P23_L, 0, false},
	{"FP3 A3", core.P32_L, 0, false}, {"MP3 A3", core.P31_L, 0, false},
	{"S1", core.S1_L, 0, false}, {"S2", core.S2_L, 0, false}, {"S3", core.S3_L, 0, false},
	{"S4", core.S4_L, 0, false}, {"S5", core.S5_L, 0, false}, {"S6", core.S6_L, 0, false},
	{"RR", core.RR_L, 0, false},
	{"RP1", core.RP1_L, 0, false}, {"RP2", core.RP2_L, 0, false}, {"RP3", core.RP3_L, 0, false},
	{"REV2", core.REV2_L, 0, false}, {"FC2", core.FC2_L, 0, false},
	{"REV3", core.REV3_L, 0, false}, {"FC3", core.FC3_L, 0, false},
}

var fctFinger = []fctMove{
	{"F2", core.F2_L, -275, false}, {"F3", core.F3_L, -275, false},
	{"A1 top", core.A1_L, 275, false}, {"A1 bot", core.A1_L, -275, false},
	{"A2 top", core.A2_L, 275, false}, {"A2 bot", core.A2_L, -275, false},
	{"A3 top", core.A3_L, 275, false}, {"A3 bot", core.A3_L, -275, false},
}

var fctNofinger = []fctMove{
	{"F2", core.F2_L, 0, false}, {"F3", core.F3_L, 0, false},
	{"A1", core.A1_L, 0, false}, {"A2", core.A2_L, 0, false}, {"A3", core.A3_L, 0, false},
	{"RR", core.RR_L, 0, false},
}

var fctShift = []fctMove{
	{"MP1 up", core.MP1_L, 500, false}, {"MP1 down", core.MP1_L, 0, false},
	{"MP2 up", core.MP2_L, 500, false}, {"MP2 down", core.MP2_L, 0, false},
	{"MP3 up", core.MP3_L, 500, false}, {"MP3 down", core.MP3_L, 0, false},
}

var fctZero = []fctMove{
	// used for searching, but not moving
	{"F2", core.F2_L, noMove, false}, {"F3", core.F3_L, noMove, false},
	{"A1", core.A1_L, noMove, false}, {"A2", core.A2_L, noMove, false}, {"A3", core.A3_L, noMove, false},
	{"S1", core.S1_L, noMove, false}, {"S2", core.S2_L, noMove, false}, {"S3", core.S3_L, noMove, false},
	{"S4", core.S4_L, noMove, false}, {"S5", core.S5_L, noMove, false}, {"S6", core.S6_L, noMove, false},
	{"RR", core.RR_L, noMove, false},
}

var fctSetcarry = []fctMove{
	{"F2 0", core.CL2_R, 41, false}, {"F2 9", core.CL2_R, 0, false},
	{"F3 0", core.CL3_R, 41, false}, {"F3 9", core.CL3_R, 0, false},
}

var fctCarrywarn = []fctMove{
	// .4 + .05 slop from warning lever to lifter
	{"F2 up", core.CW2_L, 450, false}, {"F2 down", core.CW2_L, 0, false},
	{"F2 reset", core.CW2_R, 20, false}, {"F2 return", core.CW2_R, 0, false},
	{"F3 up", core.CW3_L, 450, false}, {"F3 down", core.CW3_L, 0, false},
	{"F3 reset", core.CW3_R, 20, false}, {"F3 return", core.CW3_R, 0, false},
}

var fctCarry = []fctMove{
	{"F2 add", core.CS2_R, -(core.DegreesPerDigit + core.ExtraDegreesForCarry), false},
	{"F2 sub", core.CS2_R, +core.ExtraDegreesForCarry, false},
	{"F2 home", core.CS2_R, 0, false},
	{"F3 add", core.CS3_R, -(core.DegreesPerDigit + core.ExtraDegreesForCarry), false},
	{"F3 sub", core.CS3_R, +core.ExtraDegreesForCarry, false},
	{"F3 home", core.CS3_R, 0, false},
}

var fctKeepers = []fctMove{
	{"F2 top", core.CSK2_R, 0, false}, {"F2 bottom", core.CSK2_R, 90, false},
	{"F2 up", core.CSK2_L, 500, false}, {"F2 mid", core.CSK2_L, 450, false}, {"F2 down", core.CSK2_L, 0, false},
	{"F3 top", core.CSK3_R, 0, false}, {"F3 bottom", core.CSK3_R, 90, false},
	{"F3 up", core.CSK3_L, 500, false}, {"F3 mid", core.CSK3_L, 450, false}, {"F3 down", core.CSK3_L, 0, false},
}
