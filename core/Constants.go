package core

const ArenaWidth = 1280  // 場地寬度
const ArenaHeight = 720  // 場地高度
const BallWidth = 15     // 球寬度
const BallHeight = 15    // 球高度
const PaddleWidth = 10   // 球拍寬度
const PaddleHeight = 100 // 球拍高度
const PaddleMargin = 50  // 球拍與左右邊界的距離

// Speeds are in arena units per millisecond.
const BallSpeed = 1.0
const PaddleSpeed = 1.0

// ServeBias is the share of BallSpeed given to the vertical velocity on an angled return or serve.
const ServeBias = 0.75
