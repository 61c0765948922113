package model

// Package categories
const (
	PackageCategoryGeneral = "General"
	PackageCategorySenior  = "Senior"
)

// NumberOfClasses is stored as an enumerated string; "unlimited" maps to a
// large credit grant at sale time.
const NumberOfClassesUnlimited = "unlimited"

// UnlimitedClassCredits is the balance granted for an unlimited package.
const UnlimitedClassCredits = 999

type Package struct {
	PackageID       string  `json:"packageId" db:"package_id"`
	PackageName     string  `json:"packageName" db:"package_name"`
	Description     string  `json:"description" db:"description"`
	PackageCategory string  `json:"packageCategory" db:"package_category"`
	NumberOfClasses string  `json:"numberOfClasses" db:"number_of_classes"`
	ClassType       string  `json:"classType" db:"class_type"`
	Price           float64 `json:"price" db:"price"`
}

type CreatePackageRequest struct {
	PackageName     string  `json:"packageName" binding:"required"`
	Description     string  `json:"description"`
	PackageCategory string  `json:"packageCategory" binding:"required,oneof=General Senior"`
	NumberOfClasses string  `json:"numberOfClasses" binding:"required,oneof=1 4 10 unlimited"`
	ClassType       string  `json:"classType" binding:"required,oneof=General Special"`
	Price           float64 `json:"price" binding:"required"`
}

// PackageRef is the projection used to populate dropdown lists.
type PackageRef struct {
	PackageID   string `json:"packageId" db:"package_id"`
	PackageName string `json:"packageName" db:"package_name"`
}
