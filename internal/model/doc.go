package model

// Package model defines domain data structures used across the app: wallpaper
// entities returned by the backend, generation request parameters, and the
// style/phone-model enums. Structures are designed for direct binding in the
// UI and for JSON exchange with the backend API.
