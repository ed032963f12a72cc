package statsapi

// Fixture documents trimmed from real statsapi responses.

const scheduleFixture = `{
  "totalGames": 2,
  "dates": [
    {
      "date": "2026-08-25",
      "games": [
        {
          "gamePk": 718415,
          "gameDate": "2026-08-25T23:10:00Z",
          "status": {"abstractGameState": "Preview", "detailedState": "Scheduled"},
          "teams": {
            "away": {
              "leagueRecord": {"wins": 70, "losses": 58, "pct": ".547"},
              "team": {"id": 143, "name": "Philadelphia Phillies", "abbreviation": "PHI"}
            },
            "home": {
              "leagueRecord": {"wins": 65, "losses": 63, "pct": ".508"},
              "team": {"id": 121, "name": "New York Mets", "abbreviation": "NYM"}
            }
          },
          "venue": {"id": 3289, "name": "Citi Field"}
        },
        {
          "gamePk": 718420,
          "gameDate": "2026-08-26T01:40:00Z",
          "status": {"abstractGameState": "Live", "detailedState": "In Progress"},
          "teams": {
            "away": {
              "score": 3,
              "leagueRecord": {"wins": 72, "losses": 56, "pct": ".563"},
              "team": {"id": 135, "name": "San Diego Padres"}
            },
            "home": {
              "score": 2,
              "leagueRecord": {"wins": 74, "losses": 54, "pct": ".578"},
              "team": {"id": 137, "name": "San Francisco Giants"}
            }
          },
          "venue": {"id": 2395, "name": "Oracle Park"}
        }
      ]
    }
  ]
}`

const finalFeedFixture = `{
  "gamePk": 718415,
  "gameData": {
    "status": {"abstractGameState": "Final", "detailedState": "Final"},
    "teams": {
      "away": {"id": 143, "name": "Philadelphia Phillies", "abbreviation": "PHI"},
      "home": {"id": 121, "name": "New York Mets", "abbreviation": "NYM"}
    },
    "venue": {"id": 3289, "name": "Citi Field"},
    "datetime": {"dateTime": "2026-08-25T23:10:00Z"}
  },
  "liveData": {
    "linescore": {
      "currentInning": 9,
      "isTopInning": false,
      "outs": 3,
      "teams": {
        "away": {"runs": 6, "hits": 11, "errors": 0},
        "home": {"runs": 4, "hits": 8, "errors": 1}
      },
      "innings": [
        {"num": 1, "away": {"runs": 0}, "home": {"runs": 1}},
        {"num": 2, "away": {"runs": 2}, "home": {"runs": 0}},
        {"num": 3, "away": {"runs": 0}, "home": {"runs": 0}},
        {"num": 4, "away": {"runs": 0}, "home": {"runs": 2}},
        {"num": 5, "away": {"runs": 1}, "home": {"runs": 0}},
        {"num": 6, "away": {"runs": 0}, "home": {"runs": 0}},
        {"num": 7, "away": {"runs": 3}, "home": {"runs": 0}},
        {"num": 8, "away": {"runs": 0}, "home": {"runs": 1}},
        {"num": 9, "away": {"runs": 0}, "home": {"runs": 0}}
      ]
    },
    "plays": {}
  }
}`

const unplayedNinthFeedFixture = `{
  "gamePk": 718500,
  "gameData": {
    "status": {"abstractGameState": "Final", "detailedState": "Final"},
    "teams": {
      "away": {"id": 147, "name": "New York Yankees", "abbreviation": "NYY"},
      "home": {"id": 111, "name": "Boston Red Sox", "abbreviation": "BOS"}
    },
    "venue": {"id": 3, "name": "Fenway Park"},
    "datetime": {"dateTime": "2026-08-25T17:35:00Z"}
  },
  "liveData": {
    "linescore": {
      "currentInning": 9,
      "isTopInning": true,
      "outs": 3,
      "teams": {
        "away": {"runs": 2, "hits": 6, "errors": 1},
        "home": {"runs": 5, "hits": 10, "errors": 0}
      },
      "innings": [
        {"num": 1, "away": {"runs": 0}, "home": {"runs": 2}},
        {"num": 2, "away": {"runs": 1}, "home": {"runs": 0}},
        {"num": 3, "away": {"runs": 0}, "home": {"runs": 0}},
        {"num": 4, "away": {"runs": 0}, "home": {"runs": 1}},
        {"num": 5, "away": {"runs": 0}, "home": {"runs": 0}},
        {"num": 6, "away": {"runs": 1}, "home": {"runs": 0}},
        {"num": 7, "away": {"runs": 0}, "home": {"runs": 2}},
        {"num": 8, "away": {"runs": 0}, "home": {"runs": 0}},
        {"num": 9, "away": {"runs": 0}, "home": {}}
      ]
    },
    "plays": {}
  }
}`

const liveFeedFixture = `{
  "gamePk": 718420,
  "gameData": {
    "status": {"abstractGameState": "Live", "detailedState": "In Progress"},
    "teams": {
      "away": {"id": 135, "name": "San Diego Padres", "abbreviation": "SD"},
      "home": {"id": 137, "name": "San Francisco Giants", "abbreviation": "SF"}
    },
    "venue": {"id": 2395, "name": "Oracle Park"},
    "datetime": {"dateTime": "2026-08-26T01:40:00Z"}
  },
  "liveData": {
    "linescore": {
      "currentInning": 7,
      "isTopInning": true,
      "outs": 2,
      "teams": {
        "away": {"runs": 3, "hits": 7, "errors": 0},
        "home": {"runs": 2, "hits": 5, "errors": 1}
      },
      "innings": [
        {"num": 1, "away": {"runs": 1}, "home": {"runs": 0}},
        {"num": 2, "away": {"runs": 0}, "home": {"runs": 0}},
        {"num": 3, "away": {"runs": 0}, "home": {"runs": 2}},
        {"num": 4, "away": {"runs": 2}, "home": {"runs": 0}},
        {"num": 5, "away": {"runs": 0}, "home": {"runs": 0}},
        {"num": 6, "away": {"runs": 0}, "home": {"runs": 0}},
        {"num": 7, "away": {"runs": 0}, "home": {}}
      ]
    },
    "plays": {
      "currentPlay": {
        "result": {
          "description": "Manny Machado singles on a line drive to left fielder Heliot Ramos.",
          "event": "Single",
          "rbi": 0,
          "awayScore": 3,
          "homeScore": 2
        },
        "count": {"balls": 2, "strikes": 1, "outs": 1},
        "matchup": {
          "batter": {"id": 665487, "fullName": "Fernando Tatis Jr."},
          "pitcher": {"id": 657277, "fullName": "Logan Webb"},
          "postOnFirst": {"id": 592518, "fullName": "Manny Machado"},
          "postOnThird": {"id": 673490, "fullName": "Jackson Merrill"}
        }
      }
    }
  }
}`

const preGameFeedFixture = `{
  "gamePk": 719000,
  "gameData": {
    "status": {"abstractGameState": "Preview", "detailedState": "Pre-Game"},
    "teams": {
      "away": {"id": 116, "name": "Detroit Tigers", "abbreviation": "DET"},
      "home": {"id": 114, "name": "Cleveland Guardians", "abbreviation": "CLE"}
    },
    "venue": {"id": 5, "name": "Progressive Field"},
    "datetime": {"dateTime": "2026-08-26T22:10:00Z"}
  },
  "liveData": {
    "linescore": {"teams": {"away": {}, "home": {}}},
    "plays": {}
  }
}`

const peopleSearchFixture = `{
  "people": [
    {
      "id": 592450,
      "fullName": "Aaron Judge",
      "firstName": "Aaron",
      "lastName": "Judge",
      "active": true,
      "primaryNumber": "99",
      "height": "6' 7\"",
      "weight": 282,
      "birthDate": "1992-04-26",
      "currentAge": 34,
      "mlbDebutDate": "2016-08-13",
      "primaryPosition": {"abbreviation": "RF", "name": "Outfielder"},
      "batSide": {"code": "R"},
      "pitchHand": {"code": "R"},
      "currentTeam": {"id": 147, "name": "New York Yankees"}
    },
    {
      "id": 123456,
      "fullName": "Aaron Retired",
      "firstName": "Aaron",
      "lastName": "Retired",
      "active": false,
      "primaryPosition": {"abbreviation": "1B", "name": "First Base"},
      "currentTeam": {"id": 111, "name": "Boston Red Sox"}
    }
  ]
}`

const seasonStatsFixture = `{
  "stats": [
    {
      "group": {"displayName": "hitting"},
      "splits": [
        {
          "season": "2026",
          "team": {"id": 147, "name": "New York Yankees"},
          "stat": {
            "gamesPlayed": 120,
            "atBats": 420,
            "plateAppearances": 510,
            "runs": 98,
            "hits": 135,
            "doubles": 22,
            "triples": 1,
            "homeRuns": 41,
            "rbi": 102,
            "stolenBases": 8,
            "baseOnBalls": 84,
            "strikeOuts": 130,
            "avg": ".321",
            "obp": ".442",
            "slg": ".674",
            "ops": "1.116"
          }
        }
      ]
    },
    {
      "group": {"displayName": "pitching"},
      "splits": []
    }
  ]
}`
