// Package constants holds the handful of consensus-critical magic numbers
// shared across the coinbase and genesis subsystem: the transaction version
// used for coinbase transactions, the sompi/WALA unit conversion, and the
// master subsidy-by-month table the subsidy schedule rescales for a given
// block-per-second rate.
package constants

// TXVersion is the transaction version used for coinbase transactions built
// by this module. It is a protocol constant, not something callers configure.
const TXVersion uint16 = 0

// SompiPerWaglayla is the number of sompi (the smallest indivisible unit of
// the currency) in one WALA.
const SompiPerWaglayla = 100_000_000

// SecondsPerMonth is 365.25/12 days expressed in seconds. A year is defined
// as 365.25 days so that leap years are accounted for on average; dividing
// by 12 gives an exact, rational month length.
const SecondsPerMonth uint64 = 2_629_800

// SubsidyByMonthTableSize is the number of entries in SubsidyByMonthTable.
const SubsidyByMonthTableSize = 269

// SubsidyByMonthTable holds, for each month of the deflationary phase
// (assuming one block per second), the subsidy that should be paid per
// second during that month. Entry i is month i; there is no entry beyond
// SubsidyByMonthTableSize because the subsidy has fully depleted to zero by
// then. These values are consensus-critical and must never be "improved" or
// recomputed from a formula: they were produced once, offline, from the
// deflationary curve and are transcribed here verbatim.
var SubsidyByMonthTable = [SubsidyByMonthTableSize]uint64{
	45625737738, 41634158882, 37991784282, 34668063717, 31635119661, 28867513459, 26342031965, 24037492838, 21934566882, 20015615919,
	18264544852, 16666666666, 15208579246, 13878052960, 12663928094, 11556021239, 10545039887, 9622504486, 8780677321, 8012497612,
	7311522294, 6671871973, 6088181617, 5555555555, 5069526415, 4626017653, 4221309364, 3852007079, 3515013295, 3207501495,
	2926892440, 2670832537, 2437174098, 2223957324, 2029393872, 1851851851, 1689842138, 1542005884, 1407103121, 1284002359,
	1171671098, 1069167165, 975630813, 890277512, 812391366, 741319108, 676464624, 617283950, 563280712, 514001961,
	469034373, 428000786, 390557032, 356389055, 325210271, 296759170, 270797122, 247106369, 225488208, 205761316,
	187760237, 171333987, 156344791, 142666928, 130185677, 118796351, 108403423, 98919723, 90265707, 82368789,
	75162736, 68587105, 62586745, 57111329, 52114930, 47555642, 43395225, 39598783, 36134474, 32973241,
	30088569, 27456263, 25054245, 22862368, 20862248, 19037109, 17371643, 15851880, 14465075, 13199594,
	12044824, 10991080, 10029523, 9152087, 8351415, 7620789, 6954082, 6345703, 5790547, 5283960,
	4821691, 4399864, 4014941, 3663693, 3343174, 3050695, 2783805, 2540263, 2318027, 2115234,
	1930182, 1761320, 1607230, 1466621, 1338313, 1221231, 1114391, 1016898, 927935, 846754,
	772675, 705078, 643394, 587106, 535743, 488873, 446104, 407077, 371463, 338966,
	309311, 282251, 257558, 235026, 214464, 195702, 178581, 162957, 148701, 135692,
	123821, 112988, 103103, 94083, 85852, 78342, 71488, 65234, 59527, 54319,
	49567, 45230, 41273, 37662, 34367, 31361, 28617, 26114, 23829, 21744,
	19842, 18106, 16522, 15076, 13757, 12554, 11455, 10453, 9539, 8704,
	7943, 7248, 6614, 6035, 5507, 5025, 4585, 4184, 3818, 3484,
	3179, 2901, 2647, 2416, 2204, 2011, 1835, 1675, 1528, 1394,
	1272, 1161, 1059, 967, 882, 805, 734, 670, 611, 558,
	509, 464, 424, 387, 353, 322, 294, 268, 244, 223,
	203, 186, 169, 154, 141, 129, 117, 107, 98, 89,
	81, 74, 67, 62, 56, 51, 47, 43, 39, 35,
	32, 29, 27, 24, 22, 20, 18, 17, 15, 14,
	13, 11, 10, 9, 9, 8, 7, 6, 6, 5,
	5, 4, 4, 3, 3, 3, 3, 2, 2, 2,
	2, 1, 1, 1, 1, 1, 1, 1, 1,
}
