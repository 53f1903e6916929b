package yaku

// Yaku IDs of the standard table, in evaluation order.
const (
	// 1 han
	Riichi ID = iota
	Ippatsu
	MenzenTsumo
	Pinfu
	Tanyao
	Iipeikou
	YakuhaiWhite
	YakuhaiGreen
	YakuhaiRed
	YakuhaiRoundWind
	YakuhaiSeatWind
	Haitei
	Houtei
	RinshanKaihou
	Chankan

	// 2 han
	Chiitoitsu
	SanshokuDoujun
	Ittsu
	Chanta
	Toitoi
	Sanankou
	SanshokuDoukou
	Sankantsu
	Shousangen
	Honroutou

	// 3 han and up
	Ryanpeikou
	Junchan
	Honitsu
	Chinitsu
	Renhou

	// Yakuman
	Kokushi
	Kokushi13
	Suuankou
	SuuankouTanki
	Daisangen
	Shousuushii
	Daisuushii
	Tsuuiisou
	Chinroutou
	Ryuuiisou
	Chuuren
	JunseiChuuren
	Suukantsu
	Tenhou
	Chiihou
)

// standardTable returns a fresh copy of the standard riichi yaku table.
func standardTable() []Yaku {
	return []Yaku{
		// --- 1 Han ---
		{ID: Riichi, Kanji: "立直", Romaji: "riichi", English: "Riichi", Val: Han(1), OpenVal: Invalid, InHand: riichi},
		{ID: Ippatsu, Kanji: "一発", Romaji: "ippatsu", English: "Ippatsu", Val: Han(1), OpenVal: Invalid, InHand: ippatsu},
		{ID: MenzenTsumo, Kanji: "門前清自摸和", Romaji: "menzenchin tsumohō", English: "Fully Concealed Hand", Val: Han(1), OpenVal: Invalid, InHand: menzenTsumo},
		{ID: Pinfu, Kanji: "平和", Romaji: "pinfu", English: "Pinfu", Val: Han(1), OpenVal: Invalid, InHand: onStandard(pinfu)},
		{ID: Tanyao, Kanji: "断么九", Romaji: "tanyao", English: "All Simples", Val: Han(1), OpenVal: Full, InHand: allTiles(isSimple)},
		{ID: Iipeikou, Kanji: "一盃口", Romaji: "iīpēkō", English: "Pure Double Sequence", Val: Han(1), OpenVal: Invalid, InHand: onStandard(iipeikou)},
		{ID: YakuhaiWhite, Kanji: "役牌 白", Romaji: "yakuhai haku", English: "White Dragon", Val: Han(1), OpenVal: Full, InHand: onStandard(dragonTriplet(haku))},
		{ID: YakuhaiGreen, Kanji: "役牌 發", Romaji: "yakuhai hatsu", English: "Green Dragon", Val: Han(1), OpenVal: Full, InHand: onStandard(dragonTriplet(hatsu))},
		{ID: YakuhaiRed, Kanji: "役牌 中", Romaji: "yakuhai chun", English: "Red Dragon", Val: Han(1), OpenVal: Full, InHand: onStandard(dragonTriplet(chun))},
		{ID: YakuhaiRoundWind, Kanji: "場風牌", Romaji: "bakaze", English: "Round Wind", Val: Han(1), OpenVal: Full, InHand: onStandard(roundWind)},
		{ID: YakuhaiSeatWind, Kanji: "自風牌", Romaji: "jikaze", English: "Seat Wind", Val: Han(1), OpenVal: Full, InHand: onStandard(seatWind)},
		{ID: Haitei, Kanji: "海底摸月", Romaji: "haitei raoyue", English: "Under the Sea", Val: Han(1), OpenVal: Full, InHand: haitei},
		{ID: Houtei, Kanji: "河底撈魚", Romaji: "houtei raoyui", English: "Under the River", Val: Han(1), OpenVal: Full, InHand: houtei},
		{ID: RinshanKaihou, Kanji: "嶺上開花", Romaji: "rinshan kaihō", English: "After a Kan", Val: Han(1), OpenVal: Full, InHand: rinshan},
		{ID: Chankan, Kanji: "搶槓", Romaji: "chankan", English: "Robbing a Kan", Val: Han(1), OpenVal: Full, InHand: chankan},

		// --- 2 Han ---
		{ID: Chiitoitsu, Kanji: "七対子", Romaji: "chiitoitsu", English: "Seven Pairs", Val: Han(2), OpenVal: Invalid, InHand: chiitoitsu},
		{ID: SanshokuDoujun, Kanji: "三色同順", Romaji: "sanshoku dōjun", English: "Mixed Triple Sequence", Val: Han(2), OpenVal: Reduced, InHand: onStandard(sanshokuDoujun)},
		{ID: Ittsu, Kanji: "一気通貫", Romaji: "ikkitsūkan", English: "Pure Straight", Val: Han(2), OpenVal: Reduced, InHand: onStandard(ittsu)},
		{ID: Chanta, Kanji: "混全帯么九", Romaji: "chanta", English: "Half Outside Hand", Val: Han(2), OpenVal: Reduced, InHand: onStandard(chanta)},
		{ID: Toitoi, Kanji: "対々和", Romaji: "toitoihō", English: "All Triplets", Val: Han(2), OpenVal: Full, InHand: onStandard(toitoi)},
		{ID: Sanankou, Kanji: "三暗刻", Romaji: "sanankō", English: "Three Concealed Triplets", Val: Han(2), OpenVal: Full, InHand: onStandard(concealedTriplets(3))},
		{ID: SanshokuDoukou, Kanji: "三色同刻", Romaji: "sanshoku dōkō", English: "Triple Triplets", Val: Han(2), OpenVal: Full, InHand: onStandard(sanshokuDoukou)},
		{ID: Sankantsu, Kanji: "三槓子", Romaji: "sankantsu", English: "Three Quads", Val: Han(2), OpenVal: Full, InHand: onStandard(quads(3))},
		{ID: Shousangen, Kanji: "小三元", Romaji: "shōsangen", English: "Little Three Dragons", Val: Han(2), OpenVal: Full, InHand: onStandard(shousangen)},
		{ID: Honroutou, Kanji: "混老頭", Romaji: "honrōtō", English: "All Terminals and Honours", Val: Han(2), OpenVal: Full, InHand: honroutou},

		// --- 3+ Han ---
		{ID: Ryanpeikou, Kanji: "二盃口", Romaji: "ryanpēkō", English: "Twice Pure Double Sequence", Val: Han(3), OpenVal: Invalid, InHand: onStandard(ryanpeikou)},
		{ID: Junchan, Kanji: "純全帯么九", Romaji: "junchan", English: "Fully Outside Hand", Val: Han(3), OpenVal: Reduced, InHand: onStandard(junchan)},
		{ID: Honitsu, Kanji: "混一色", Romaji: "hon'īsō", English: "Half Flush", Val: Han(3), OpenVal: Reduced, InHand: honitsu},
		{ID: Chinitsu, Kanji: "清一色", Romaji: "chin'īsō", English: "Full Flush", Val: Han(6), OpenVal: Reduced, InHand: chinitsu},
		{ID: Renhou, Kanji: "人和", Romaji: "renhō", English: "Blessing of Man", Val: Mangan(), OpenVal: Invalid, InHand: renhou},

		// --- Yakuman ---
		{ID: Kokushi, Kanji: "国士無双", Romaji: "kokushimusō", English: "Thirteen Orphans", Val: Yakuman(), OpenVal: Invalid, InHand: kokushi},
		{ID: Kokushi13, Kanji: "国士無双十三面待ち", Romaji: "kokushimusō jūsanmen", English: "Thirteen-Sided Thirteen Orphans", Val: DoubleYakuman(), OpenVal: Invalid, InHand: kokushi13},
		{ID: Suuankou, Kanji: "四暗刻", Romaji: "sūankō", English: "Four Concealed Triplets", Val: Yakuman(), OpenVal: Invalid, InHand: onStandard(suuankou)},
		{ID: SuuankouTanki, Kanji: "四暗刻単騎", Romaji: "sūankō tanki", English: "Single-Wait Four Concealed Triplets", Val: DoubleYakuman(), OpenVal: Invalid, InHand: onStandard(suuankouTanki)},
		{ID: Daisangen, Kanji: "大三元", Romaji: "daisangen", English: "Big Three Dragons", Val: Yakuman(), OpenVal: Full, InHand: onStandard(daisangen)},
		{ID: Shousuushii, Kanji: "小四喜", Romaji: "shōsūshī", English: "Little Four Winds", Val: Yakuman(), OpenVal: Full, InHand: onStandard(shousuushii)},
		{ID: Daisuushii, Kanji: "大四喜", Romaji: "daisūshī", English: "Big Four Winds", Val: DoubleYakuman(), OpenVal: Full, InHand: onStandard(daisuushii)},
		{ID: Tsuuiisou, Kanji: "字一色", Romaji: "tsūīsō", English: "All Honours", Val: Yakuman(), OpenVal: Full, InHand: allTiles(isHonour)},
		{ID: Chinroutou, Kanji: "清老頭", Romaji: "chinrōtō", English: "All Terminals", Val: Yakuman(), OpenVal: Full, InHand: allTiles(isTerminal)},
		{ID: Ryuuiisou, Kanji: "緑一色", Romaji: "ryūīsō", English: "All Green", Val: Yakuman(), OpenVal: Full, InHand: allTiles(isGreen)},
		{ID: Chuuren, Kanji: "九蓮宝燈", Romaji: "chūren pōtō", English: "Nine Gates", Val: Yakuman(), OpenVal: Invalid, InHand: onStandard(chuuren)},
		{ID: JunseiChuuren, Kanji: "純正九蓮宝燈", Romaji: "junsei chūren pōtō", English: "True Nine Gates", Val: DoubleYakuman(), OpenVal: Invalid, InHand: onStandard(junseiChuuren)},
		{ID: Suukantsu, Kanji: "四槓子", Romaji: "sūkantsu", English: "Four Quads", Val: Yakuman(), OpenVal: Full, InHand: onStandard(quads(4))},
		{ID: Tenhou, Kanji: "天和", Romaji: "tenhō", English: "Blessing of Heaven", Val: Yakuman(), OpenVal: Invalid, InHand: tenhou},
		{ID: Chiihou, Kanji: "地和", Romaji: "chīhō", English: "Blessing of Earth", Val: Yakuman(), OpenVal: Invalid, InHand: chiihou},
	}
}
