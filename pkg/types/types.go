// Package domain defines the marketplace entities exchanged with the
// Cardmarket API.
package domain

import (
	"encoding/json"
	"slices"
)

// Condition is the Cardmarket grading of a single card.
type Condition string

// Condition constants, best to worst.
const (
	ConditionMint        Condition = "MT"
	ConditionNearMint    Condition = "NM"
	ConditionExcellent   Condition = "EX"
	ConditionGood        Condition = "GD"
	ConditionLightPlayed Condition = "LP"
	ConditionPlayed      Condition = "PL"
	ConditionPoor        Condition = "PO"
)

var conditionOrder = []Condition{
	ConditionMint,
	ConditionNearMint,
	ConditionExcellent,
	ConditionGood,
	ConditionLightPlayed,
	ConditionPlayed,
	ConditionPoor,
}

// Valid reports whether c is one of the grades the marketplace accepts.
func (c Condition) Valid() bool {
	return slices.Contains(conditionOrder, c)
}

// AtLeast reports whether c is the same grade as min or better.
func (c Condition) AtLeast(min Condition) bool {
	ci := slices.Index(conditionOrder, c)
	mi := slices.Index(conditionOrder, min)
	if ci < 0 || mi < 0 {
		return false
	}
	return ci <= mi
}

// Account is the authenticated user's account entity.
type Account struct {
	IDUser            int           `json:"idUser"`
	Username          string        `json:"username"`
	Country           string        `json:"country"`
	IsCommercial      int           `json:"isCommercial"`
	MaySell           bool          `json:"maySell"`
	Reputation        int           `json:"reputation"`
	OnVacation        bool          `json:"onVacation"`
	IDDisplayLanguage json.Number   `json:"idDisplayLanguage"`
	Name              *PersonName   `json:"name,omitempty"`
	MoneyDetails      *MoneyDetails `json:"moneyDetails,omitempty"`
	UnreadMessages    int           `json:"unreadMessages"`
}

// PersonName holds the account holder's name.
type PersonName struct {
	Company   string `json:"company,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// MoneyDetails holds the account balances.
type MoneyDetails struct {
	TotalBalance           float64 `json:"totalBalance"`
	MoneyBalance           float64 `json:"moneyBalance"`
	BonusBalance           float64 `json:"bonusBalance"`
	UnpaidAmount           float64 `json:"unpaidAmount"`
	ProviderRechargeAmount float64 `json:"providerRechargeAmount"`
}

// VacationResult is returned when the vacation flag is changed.
type VacationResult struct {
	Message string  `json:"message"`
	Account Account `json:"account"`
}

// Language identifies an article or product language.
type Language struct {
	IDLanguage   int    `json:"idLanguage"`
	LanguageName string `json:"languageName"`
}

// User is the public view of another marketplace user (e.g. a seller).
type User struct {
	IDUser       int    `json:"idUser"`
	Username     string `json:"username"`
	Country      string `json:"country,omitempty"`
	IsCommercial int    `json:"isCommercial"`
	Reputation   int    `json:"reputation"`
}

// Article is a single stock listing: a product offered at a price in a
// given condition and language.
type Article struct {
	IDArticle      int       `json:"idArticle,omitempty"`
	IDProduct      int       `json:"idProduct,omitempty"`
	Language       *Language `json:"language,omitempty"`
	Comments       string    `json:"comments,omitempty"`
	Price          float64   `json:"price,omitempty"`
	Count          int       `json:"count,omitempty"`
	InShoppingCart bool      `json:"inShoppingCart,omitempty"`
	Condition      Condition `json:"condition,omitempty"`
	IsFoil         bool      `json:"isFoil,omitempty"`
	IsSigned       bool      `json:"isSigned,omitempty"`
	IsPlayset      bool      `json:"isPlayset,omitempty"`
	IsAltered      bool      `json:"isAltered,omitempty"`
	LastEdited     string    `json:"lastEdited,omitempty"`
	Product        *Product  `json:"product,omitempty"`
	Seller         *User     `json:"seller,omitempty"`
}

// LanguageID returns the article's language code, or 0 when unset.
func (a *Article) LanguageID() int {
	if a.Language == nil {
		return 0
	}
	return a.Language.IDLanguage
}

// TotalPrice returns price multiplied by the number of copies.
func (a *Article) TotalPrice() float64 {
	if a.Count <= 1 {
		return a.Price
	}
	return a.Price * float64(a.Count)
}

// PriceGuide holds the marketplace's aggregated price statistics for a
// product.
type PriceGuide struct {
	Sell      float64 `json:"SELL"`
	Low       float64 `json:"LOW"`
	LowEx     float64 `json:"LOWEX"`
	LowFoil   float64 `json:"LOWFOIL"`
	Avg       float64 `json:"AVG"`
	Trend     float64 `json:"TREND"`
	TrendFoil float64 `json:"TRENDFOIL"`
}

// Product is a catalogue entry (a single card or sealed item).
type Product struct {
	IDProduct     int         `json:"idProduct"`
	IDMetaproduct int         `json:"idMetaproduct,omitempty"`
	IDGame        int         `json:"idGame,omitempty"`
	CountReprints int         `json:"countReprints,omitempty"`
	EnName        string      `json:"enName"`
	LocName       string      `json:"locName,omitempty"`
	Website       string      `json:"website,omitempty"`
	Image         string      `json:"image,omitempty"`
	GameName      string      `json:"gameName,omitempty"`
	CategoryName  string      `json:"categoryName,omitempty"`
	Number        string      `json:"number,omitempty"`
	Rarity        string      `json:"rarity,omitempty"`
	ExpansionName string      `json:"expansionName,omitempty"`
	CountArticles int         `json:"countArticles,omitempty"`
	CountFoils    int         `json:"countFoils,omitempty"`
	PriceGuide    *PriceGuide `json:"priceGuide,omitempty"`
}

// Wantslist is a named list of wanted products.
type Wantslist struct {
	IDWantslist int             `json:"idWantslist"`
	Name        string          `json:"name"`
	ItemCount   int             `json:"itemCount"`
	Game        *Game           `json:"game,omitempty"`
	Item        []WantslistItem `json:"item,omitempty"`
}

// Game identifies one of the games traded on the marketplace.
type Game struct {
	IDGame       int    `json:"idGame"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation,omitempty"`
}

// WantslistItem is one entry of a wantslist, pointing at either a product
// or a metaproduct.
type WantslistItem struct {
	IDWant        string    `json:"idWant"`
	Type          string    `json:"type"`
	Count         int       `json:"count"`
	WishPrice     float64   `json:"wishPrice,omitempty"`
	IDProduct     int       `json:"idProduct,omitempty"`
	IDMetaproduct int       `json:"idMetaproduct,omitempty"`
	IDLanguage    []int     `json:"idLanguage,omitempty"`
	MinCondition  Condition `json:"minCondition,omitempty"`
	MailAlert     bool      `json:"mailAlert"`
	Product       *Product  `json:"product,omitempty"`
}

// StockResult reports the outcome of one article in a stock write. Write
// endpoints return one StockResult per submitted article.
type StockResult struct {
	Success   bool     `json:"success"`
	IDArticle int      `json:"idArticle,omitempty"`
	Count     int      `json:"count,omitempty"`
	Article   *Article `json:"article,omitempty"`
	Error     string   `json:"error,omitempty"`
}
