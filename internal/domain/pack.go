package domain

import "time"

// Pack composition. The rare slot holds either a holo or a non-holo rare.
const (
	PackEnergySlots   = 2
	PackCommonSlots   = 5
	PackUncommonSlots = 3
	PackRareSlots     = 1
	PackSize          = PackEnergySlots + PackCommonSlots + PackUncommonSlots + PackRareSlots
)

// HoloChance is the probability that the rare slot is drawn from the holo bucket.
const HoloChance = 1.0 / 3.0

// BoosterPack is a purchased pack. Cards are fixed at creation time.
type BoosterPack struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image,omitempty"`
	Cards     []Card    `json:"cards"`
	IsOpened  bool      `json:"is_opened"`
	CreatedAt time.Time `json:"created_at"`
}

// PackType is a cosmetic pack variant offered in the shop. It does not affect odds.
type PackType struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Image       string `json:"image"`
	Price       int    `json:"price"`
}
