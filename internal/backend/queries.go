package backend

const loginMutation = `
mutation Login($email: String!, $password: String!) {
  login(email: $email, password: $password) {
    token
    user { userId companyId }
  }
}`

const employeeListQuery = `
query GetEmployeeList($companyId: Int!) {
  getEmployeeList(companyId: $companyId) {
    employees {
      id
      employeeNumber
      name
      phoneNumber
      email
      joinDate
      leaveDate
      status
      jamInfo { totalJams balanceJams }
      membershipInfo { startDate }
      group { groupId groupName }
    }
    totalCount
  }
}`

// The backend exposes a single updateEmployeeStatus field; the operation
// name only differs so backend logs show which workflow step ran.
const updateEmployeeStatusTemplate = `
mutation %s($input: UpdateEmployeeStatusInputDto!) {
  updateEmployeeStatus(input: $input) {
    success
    message
    employeeId
  }
}`

const creditSummaryQuery = `
query GetB2bCreditSummary($companyId: Int!) {
  getB2bCreditSummary(companyId: $companyId) {
    totalCharged
    totalBalance
    usageRate
    expiringSoon { amount expiryDate daysUntilExpiry }
    credits {
      b2bCreditId
      name
      note
      totalCredits
      balance
      expiryDate
      createdAt
      isExpired
      daysUntilExpiry
    }
  }
}`

const allocateCreditsMutation = `
mutation AllocateCredits($input: AllocateCreditsInputDto!) {
  allocateCredits(input: $input) {
    success
    successCount
    failedCount
    results { userId success error }
  }
}`

const employeeGroupFields = `
      employeeGroupId
      companyId
      name
      isActive
      credits
      renewDate
      rolloverPercentage
      renewalPeriodType
      createdAt
      updatedAt`

const employeeGroupsQuery = `
query GetEmployeeGroups($companyId: Int!) {
  getEmployeeGroups(companyId: $companyId) {
    groups {
      employeeGroupId
      name
      isActive
      credits
      renewDate
      rolloverPercentage
      renewalPeriodType
      createdAt
      employeeCount
    }
  }
}`

const createEmployeeGroupMutation = `
mutation CreateEmployeeGroup($input: CreateEmployeeGroupInput!) {
  createEmployeeGroup(input: $input) {` + employeeGroupFields + `
  }
}`

const updateEmployeeGroupMutation = `
mutation UpdateEmployeeGroup($input: UpdateEmployeeGroupInput!) {
  updateEmployeeGroup(input: $input) {` + employeeGroupFields + `
  }
}`

const deleteEmployeeGroupMutation = `
mutation DeleteEmployeeGroup($input: DeleteEmployeeGroupInput!) {
  deleteEmployeeGroup(input: $input)
}`

const assignEmployeeToGroupMutation = `
mutation AssignEmployeeToGroup($input: AssignEmployeeToGroupInput!) {
  assignEmployeeToGroup(input: $input)
}`

const unassignEmployeeFromGroupMutation = `
mutation UnassignEmployeeFromGroup($input: UnassignEmployeeFromGroupInput!) {
  unassignEmployeeFromGroup(input: $input)
}`

const memberStatsQuery = `
query GetMemberStats($companyId: Int!) {
  getMemberStats(companyId: $companyId) {
    totalApprovedMembers
    subscribingMembers
    subscriptionRate
  }
}`

const monthlyJamUsageQuery = `
query GetMonthlyJamUsage($companyId: Int!, $months: Int) {
  getMonthlyJamUsage(companyId: $companyId, months: $months) {
    monthlyUsage {
      yearMonth
      totalUsage
      activeEmployeeCount
      averageUsage
    }
    overallAverageUsage
    totalUsage
  }
}`

const recentReviewsQuery = `
query GetRecentReviews($companyId: Int!, $days: Int, $limit: Int) {
  getRecentReviews(companyId: $companyId, days: $days, limit: $limit) {
    reviews {
      review
      rating
      providerName
      createdAt
    }
    totalCount
    averageRating
  }
}`
